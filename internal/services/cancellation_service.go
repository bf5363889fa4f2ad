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

// CancellationService records ticket withdrawals with a frozen policy
// snapshot and drives the ticket's confirmed -> cancelled transition.
type CancellationService struct {
	Ledger    repositories.Ledger
	Publisher message.Publisher
	RequestID string

	// Now is injectable for deterministic policy evaluation in tests.
	// Nil means wall clock.
	Now func() time.Time
}

func (s CancellationService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Evaluate runs the refund policy against the ticket's trip without
// recording anything. Missing ticket or trip yields a soft ineligible
// result carrying a diagnostic label.
func (s CancellationService) Evaluate(ticketID string) domain.Eligibility {
	ticket, ok := s.Ledger.TicketByID(ticketID)
	if !ok {
		return domain.EvaluateRefund(nil, nil, s.now())
	}
	trip, ok := s.Ledger.TripByID(ticket.TripID)
	if !ok {
		return domain.EvaluateRefund(&ticket, nil, s.now())
	}
	return domain.EvaluateRefund(&ticket, &trip, s.now())
}

// Create records a cancellation for a confirmed ticket. The eligibility
// snapshot is taken here and never recomputed; the ticket flips to
// cancelled in the same call.
func (s CancellationService) Create(ticketID, reason, cancelledBy string) (models.Cancellation, error) {
	ticketID = strings.TrimSpace(ticketID)
	reason = strings.TrimSpace(reason)

	if ticketID == "" {
		return models.Cancellation{}, domain.Invalid("ticketId", "is required")
	}
	if reason == "" {
		return models.Cancellation{}, domain.Invalid("reason", "is required")
	}
	if cancelledBy == "" {
		cancelledBy = models.CancelledByUser
	}

	ticket, ok := s.Ledger.TicketByID(ticketID)
	if !ok {
		return models.Cancellation{}, domain.NotFound("ticket", ticketID)
	}
	if ticket.Status == models.TicketCancelled {
		return models.Cancellation{}, domain.Conflict("ticket", "ticket is already cancelled")
	}

	eligibility := s.Evaluate(ticketID)

	cancellation := models.Cancellation{
		TicketID:           ticketID,
		UserID:             ticket.UserID,
		Reason:             reason,
		CancelledBy:        cancelledBy,
		CancellationPolicy: eligibility.Policy,
		RefundEligibility:  eligibility.Eligible,
		RefundAmount:       eligibility.Amount,
	}
	if err := s.Ledger.CreateCancellation(&cancellation); err != nil {
		return models.Cancellation{}, err
	}
	if err := s.Ledger.SetTicketStatus(ticketID, models.TicketCancelled); err != nil {
		return models.Cancellation{}, domain.Internal("cancellation recorded but ticket status update failed", err)
	}

	utils.LogEvent(s.RequestID, "cancellation", "create",
		"cancellation_id="+cancellation.ID+" ticket_id="+ticketID)

	if s.Publisher != nil {
		err := events.PublishJSON(s.Publisher, events.TopicCancellationCreated, events.CancellationCreated{
			CancellationID:    cancellation.ID,
			TicketID:          cancellation.TicketID,
			UserID:            cancellation.UserID,
			Reason:            cancellation.Reason,
			RefundEligibility: cancellation.RefundEligibility,
			RefundAmount:      cancellation.RefundAmount,
			Policy:            cancellation.CancellationPolicy,
		})
		if err != nil {
			utils.LogEvent(s.RequestID, "cancellation", "publish_failed", err.Error())
		}
	}

	return cancellation, nil
}

// Process marks a pending cancellation processed, unlocking refund
// creation for eligible ones.
func (s CancellationService) Process(id string) (models.Cancellation, error) {
	return s.transition(id, models.CancellationProcessed)
}

// Reject finalizes a pending cancellation without a refund path.
func (s CancellationService) Reject(id string) (models.Cancellation, error) {
	return s.transition(id, models.CancellationRejected)
}

func (s CancellationService) transition(id string, to models.CancellationStatus) (models.Cancellation, error) {
	cancellation, ok := s.Ledger.CancellationByID(id)
	if !ok {
		return models.Cancellation{}, domain.NotFound("cancellation", id)
	}
	if cancellation.Status != models.CancellationPending {
		return models.Cancellation{}, domain.Conflict("cancellation",
			"only pending cancellations can be "+string(to))
	}

	var processedAt *time.Time
	if to == models.CancellationProcessed {
		now := s.now()
		processedAt = &now
	}
	if err := s.Ledger.SetCancellationStatus(id, to, processedAt); err != nil {
		return models.Cancellation{}, err
	}

	utils.LogEvent(s.RequestID, "cancellation", string(to), "cancellation_id="+id)

	updated, _ := s.Ledger.CancellationByID(id)
	return updated, nil
}

func (s CancellationService) Get(id string) (models.Cancellation, error) {
	cancellation, ok := s.Ledger.CancellationByID(id)
	if !ok {
		return models.Cancellation{}, domain.NotFound("cancellation", id)
	}
	return cancellation, nil
}

func (s CancellationService) List(filter repositories.CancellationFilter) []models.Cancellation {
	return s.Ledger.ListCancellations(filter)
}
