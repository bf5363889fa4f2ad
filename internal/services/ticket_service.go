package services

import (
	"strings"

	"busline/internal/domain"
	"busline/internal/domain/models"
	"busline/internal/repositories"
	"busline/internal/utils"
)

// TicketService issues tickets against a trip's seat inventory.
type TicketService struct {
	Ledger    repositories.Ledger
	RequestID string
}

// Create books a seat. The trip price is snapshotted onto the ticket at
// issuance and the trip's available seats drop by one.
func (s TicketService) Create(userID, tripID, seatNumber string) (models.Ticket, error) {
	userID = strings.TrimSpace(userID)
	tripID = strings.TrimSpace(tripID)
	seatNumber = strings.TrimSpace(seatNumber)

	switch {
	case userID == "":
		return models.Ticket{}, domain.Invalid("userId", "is required")
	case tripID == "":
		return models.Ticket{}, domain.Invalid("tripId", "is required")
	case seatNumber == "":
		return models.Ticket{}, domain.Invalid("seatNumber", "is required")
	}

	if _, ok := s.Ledger.UserByID(userID); !ok {
		return models.Ticket{}, domain.NotFound("user", userID)
	}
	trip, ok := s.Ledger.TripByID(tripID)
	if !ok {
		return models.Ticket{}, domain.NotFound("trip", tripID)
	}

	if err := s.Ledger.DecrementSeat(tripID); err != nil {
		return models.Ticket{}, err
	}

	ticket := models.Ticket{
		UserID:     userID,
		TripID:     tripID,
		SeatNumber: seatNumber,
		Price:      trip.Price,
	}
	if err := s.Ledger.CreateTicket(&ticket); err != nil {
		return models.Ticket{}, err
	}

	utils.LogEvent(s.RequestID, "ticket", "create", "ticket_id="+ticket.ID+" trip_id="+tripID)
	return ticket, nil
}

func (s TicketService) Get(id string) (models.Ticket, error) {
	ticket, ok := s.Ledger.TicketByID(id)
	if !ok {
		return models.Ticket{}, domain.NotFound("ticket", id)
	}
	return ticket, nil
}

func (s TicketService) List(filter repositories.TicketFilter) []models.Ticket {
	return s.Ledger.ListTickets(filter)
}
