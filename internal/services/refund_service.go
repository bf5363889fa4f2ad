package services

import (
	"strings"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"

	"busline/internal/domain"
	"busline/internal/domain/models"
	"busline/internal/events"
	"busline/internal/repositories"
	"busline/internal/utils"
)

// refundCompletionWindow is the advertised settlement period.
const refundCompletionWindow = 7 * 24 * time.Hour

// RefundService creates refunds from processed, eligible cancellations
// and exposes the administrative completed/failed transitions.
type RefundService struct {
	Ledger    repositories.Ledger
	Publisher message.Publisher
	RequestID string

	Now func() time.Time
}

func (s RefundService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Create guards the one-refund-per-cancellation invariant and the
// processed+eligible preconditions, then records the refund in
// processing state. The original amount is the ticket price; the
// percentage is derived from the amounts, never stored independently.
func (s RefundService) Create(cancellationID string) (models.Refund, error) {
	cancellationID = strings.TrimSpace(cancellationID)
	if cancellationID == "" {
		return models.Refund{}, domain.Invalid("cancellationId", "is required")
	}

	cancellation, ok := s.Ledger.CancellationByID(cancellationID)
	if !ok {
		return models.Refund{}, domain.NotFound("cancellation", cancellationID)
	}
	if !cancellation.RefundEligibility {
		return models.Refund{}, domain.Conflict("cancellation",
			"not eligible for refund under the cancellation policy")
	}
	if cancellation.Status != models.CancellationProcessed {
		return models.Refund{}, domain.Conflict("cancellation",
			"must be processed before a refund can be initiated")
	}
	if _, exists := s.Ledger.RefundByCancellationID(cancellationID); exists {
		return models.Refund{}, domain.Conflict("refund", "refund already exists for this cancellation")
	}

	ticket, ok := s.Ledger.TicketByID(cancellation.TicketID)
	if !ok {
		// The cancellation references a ticket that no longer resolves;
		// the ledger is append-only so this is a corrupt record.
		return models.Refund{}, domain.Internal("cancellation references unknown ticket", nil)
	}

	now := s.now()
	refund := models.Refund{
		CancellationID:         cancellationID,
		TicketID:               cancellation.TicketID,
		UserID:                 cancellation.UserID,
		OriginalAmount:         ticket.Price,
		RefundAmount:           cancellation.RefundAmount,
		RefundPercentage:       domain.RefundPercentage(cancellation.RefundAmount, ticket.Price),
		Reason:                 cancellation.Reason,
		Status:                 models.RefundProcessing,
		ExpectedCompletionDate: now.Add(refundCompletionWindow),
	}
	if err := s.Ledger.CreateRefund(&refund); err != nil {
		return models.Refund{}, err
	}

	utils.LogEvent(s.RequestID, "refund", "create",
		"refund_id="+refund.ID+" cancellation_id="+cancellationID)

	if s.Publisher != nil {
		err := events.PublishJSON(s.Publisher, events.TopicRefundInitiated, events.RefundInitiated{
			RefundID:               refund.ID,
			CancellationID:         refund.CancellationID,
			UserID:                 refund.UserID,
			OriginalAmount:         refund.OriginalAmount,
			RefundAmount:           refund.RefundAmount,
			RefundPercentage:       refund.RefundPercentage,
			ExpectedCompletionDate: refund.ExpectedCompletionDate,
		})
		if err != nil {
			utils.LogEvent(s.RequestID, "refund", "publish_failed", err.Error())
		}
	}

	return refund, nil
}

// Complete settles a processing refund.
func (s RefundService) Complete(id string) (models.Refund, error) {
	return s.transition(id, models.RefundCompleted)
}

// Fail terminates a processing refund without settlement.
func (s RefundService) Fail(id string) (models.Refund, error) {
	return s.transition(id, models.RefundFailed)
}

func (s RefundService) transition(id string, to models.RefundStatus) (models.Refund, error) {
	refund, ok := s.Ledger.RefundByID(id)
	if !ok {
		return models.Refund{}, domain.NotFound("refund", id)
	}
	if refund.Status != models.RefundProcessing {
		return models.Refund{}, domain.Conflict("refund",
			"only processing refunds can be marked "+string(to))
	}

	now := s.now()
	if err := s.Ledger.SetRefundStatus(id, to, &now); err != nil {
		return models.Refund{}, err
	}

	utils.LogEvent(s.RequestID, "refund", string(to), "refund_id="+id)

	updated, _ := s.Ledger.RefundByID(id)
	return updated, nil
}

func (s RefundService) Get(id string) (models.Refund, error) {
	refund, ok := s.Ledger.RefundByID(id)
	if !ok {
		return models.Refund{}, domain.NotFound("refund", id)
	}
	return refund, nil
}

func (s RefundService) List(filter repositories.RefundFilter) []models.Refund {
	return s.Ledger.ListRefunds(filter)
}
