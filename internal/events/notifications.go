package events

import (
	"encoding/json"
	"fmt"

	"github.com/ThreeDotsLabs/watermill/message"
	wmiddleware "github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"go.uber.org/zap"

	"busline/internal/email"
	"busline/internal/repositories"
	"busline/internal/utils"
)

// Notifier turns ledger events into user-facing emails. It only reads
// from the ledger; all writes happened before the event was published.
type Notifier struct {
	Ledger repositories.Ledger
	Mailer email.Mailer
	Logger *zap.Logger
}

func (n *Notifier) HandleCancellationCreated(msg *message.Message) error {
	var event CancellationCreated
	if err := json.Unmarshal(msg.Payload, &event); err != nil {
		return fmt.Errorf("decode cancellation_created: %w", err)
	}

	user, ok := n.Ledger.UserByID(event.UserID)
	if !ok || user.Email == "" {
		n.Logger.Info("skipping cancellation email, no address on file",
			zap.String("user_id", event.UserID),
			zap.String("cancellation_id", event.CancellationID),
		)
		return nil
	}

	subject, html, err := email.RenderCancellation(email.CancellationEmailData{
		Name:     user.Name,
		TicketID: event.TicketID,
		Policy:   event.Policy,
		Eligible: event.RefundEligibility,
		Amount:   utils.FormatMoney(event.RefundAmount),
	})
	if err != nil {
		return err
	}

	return n.Mailer.Send(msg.Context(), email.Message{To: user.Email, Subject: subject, HTML: html})
}

func (n *Notifier) HandleRefundInitiated(msg *message.Message) error {
	var event RefundInitiated
	if err := json.Unmarshal(msg.Payload, &event); err != nil {
		return fmt.Errorf("decode refund_initiated: %w", err)
	}

	user, ok := n.Ledger.UserByID(event.UserID)
	if !ok || user.Email == "" {
		n.Logger.Info("skipping refund email, no address on file",
			zap.String("user_id", event.UserID),
			zap.String("refund_id", event.RefundID),
		)
		return nil
	}

	subject, html, err := email.RenderRefund(email.RefundEmailData{
		Name:       user.Name,
		RefundID:   event.RefundID,
		Amount:     utils.FormatMoney(event.RefundAmount),
		Original:   utils.FormatMoney(event.OriginalAmount),
		Percentage: event.RefundPercentage,
		ExpectedBy: event.ExpectedCompletionDate.Format("January 2, 2006"),
	})
	if err != nil {
		return err
	}

	return n.Mailer.Send(msg.Context(), email.Message{To: user.Email, Subject: subject, HTML: html})
}

// NewNotificationRouter wires the notifier's handlers onto a watermill
// router over the given subscriber.
func NewNotificationRouter(subscriber message.Subscriber, notifier *Notifier, logger *zap.Logger) (*message.Router, error) {
	router, err := message.NewRouter(message.RouterConfig{}, NewZapLoggerAdapter(logger))
	if err != nil {
		return nil, err
	}
	router.AddMiddleware(wmiddleware.Recoverer)

	router.AddNoPublisherHandler(
		"cancellation_email_handler",
		TopicCancellationCreated,
		subscriber,
		notifier.HandleCancellationCreated,
	)
	router.AddNoPublisherHandler(
		"refund_email_handler",
		TopicRefundInitiated,
		subscriber,
		notifier.HandleRefundInitiated,
	)

	return router, nil
}
