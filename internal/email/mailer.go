package email

import (
	"context"

	"go.uber.org/zap"
)

// Message is a rendered email ready for delivery.
type Message struct {
	To      string
	Subject string
	HTML    string
}

// Mailer delivers rendered emails. The default implementation only logs;
// a real provider client satisfies the same interface.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// LogMailer records outbound mail in the log instead of sending it.
type LogMailer struct {
	Logger *zap.Logger
}

func (m LogMailer) Send(_ context.Context, msg Message) error {
	m.Logger.Info("email delivered to log sink",
		zap.String("to", msg.To),
		zap.String("subject", msg.Subject),
		zap.Int("body_bytes", len(msg.HTML)),
	)
	return nil
}
