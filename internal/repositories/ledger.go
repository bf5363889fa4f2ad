package repositories

import (
	"time"

	"busline/internal/domain/models"
)

// TicketFilter narrows ticket listings.
type TicketFilter struct {
	UserID string
}

// CancellationFilter narrows cancellation listings.
type CancellationFilter struct {
	UserID   string
	TicketID string
}

// RefundFilter narrows refund listings.
type RefundFilter struct {
	UserID string
}

// Ledger owns the append-only collections and their cross-reference
// integrity. Creates fill in id and createdAt and never mutate other
// caller-supplied fields. Lookups return an ok flag instead of an error
// so callers can translate a miss into a not-found response.
//
// Implementations must serialize mutations: duplicate-refund and
// duplicate-active-cancellation checks happen under the same lock as the
// insert, so two racing requests cannot both pass the guard.
type Ledger interface {
	CreateUser(user *models.User) error
	UserByID(id string) (models.User, bool)
	UserByEmail(email string) (models.User, bool)
	ListUsers() []models.User

	CreateOperator(op *models.BusOperator) error
	OperatorByID(id string) (models.BusOperator, bool)
	ListOperators() []models.BusOperator

	CreateTrip(trip *models.Trip) error
	TripByID(id string) (models.Trip, bool)
	ListTrips() []models.Trip
	DecrementSeat(tripID string) error

	CreateTicket(ticket *models.Ticket) error
	TicketByID(id string) (models.Ticket, bool)
	ListTickets(filter TicketFilter) []models.Ticket
	SetTicketStatus(id string, status models.TicketStatus) error

	CreateCancellation(c *models.Cancellation) error
	CancellationByID(id string) (models.Cancellation, bool)
	ListCancellations(filter CancellationFilter) []models.Cancellation
	SetCancellationStatus(id string, status models.CancellationStatus, processedAt *time.Time) error

	CreateRefund(r *models.Refund) error
	RefundByID(id string) (models.Refund, bool)
	RefundByCancellationID(cancellationID string) (models.Refund, bool)
	ListRefunds(filter RefundFilter) []models.Refund
	SetRefundStatus(id string, status models.RefundStatus, processedAt *time.Time) error
}
