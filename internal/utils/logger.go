package utils

import (
	"go.uber.org/zap"
)

var base = zap.NewNop()

// InitLogger builds the process logger. Debug mode switches to the
// development encoder.
func InitLogger(debug bool) (*zap.Logger, error) {
	var (
		logger *zap.Logger
		err    error
	)
	if debug {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		return nil, err
	}
	base = logger
	return logger, nil
}

// L returns the process logger. Safe before InitLogger: it no-ops.
func L() *zap.Logger {
	return base
}

// LogEvent emits a standardized module/action line. Keep messages
// summarized; never log credentials or full payloads.
func LogEvent(requestID, module, action, message string) {
	base.Info(message,
		zap.String("module", module),
		zap.String("action", action),
		zap.String("request_id", requestID),
	)
}
