package events

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	TopicCancellationCreated = "cancellation_created"
	TopicRefundInitiated     = "refund_initiated"
)

// CancellationCreated is published after a cancellation is recorded and
// the ticket flipped to cancelled.
type CancellationCreated struct {
	CancellationID    string  `json:"cancellationId"`
	TicketID          string  `json:"ticketId"`
	UserID            string  `json:"userId"`
	Reason            string  `json:"reason"`
	RefundEligibility bool    `json:"refundEligibility"`
	RefundAmount      float64 `json:"refundAmount"`
	Policy            string  `json:"policy"`
}

// RefundInitiated is published after a refund record is created.
type RefundInitiated struct {
	RefundID               string    `json:"refundId"`
	CancellationID         string    `json:"cancellationId"`
	UserID                 string    `json:"userId"`
	OriginalAmount         float64   `json:"originalAmount"`
	RefundAmount           float64   `json:"refundAmount"`
	RefundPercentage       int       `json:"refundPercentage"`
	ExpectedCompletionDate time.Time `json:"expectedCompletionDate"`
}

// NewPubSub builds the in-process channel-backed pub/sub. Messages are
// delivered to subscribers started before publishing; the router is
// started ahead of the HTTP server in main.
func NewPubSub(logger *zap.Logger) *gochannel.GoChannel {
	return gochannel.NewGoChannel(
		gochannel.Config{OutputChannelBuffer: 64},
		NewZapLoggerAdapter(logger),
	)
}

// PublishJSON marshals payload and publishes it with a fresh UUID.
func PublishJSON(publisher message.Publisher, topic string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal %s payload: %w", topic, err)
	}
	return publisher.Publish(topic, message.NewMessage(uuid.NewString(), data))
}
