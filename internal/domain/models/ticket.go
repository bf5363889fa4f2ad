package models

import "time"

type TicketStatus string

const (
	TicketConfirmed TicketStatus = "confirmed"
	TicketCancelled TicketStatus = "cancelled"
)

// Ticket is a confirmed seat reservation. Price is copied from the trip
// at issuance and never tracks later trip changes. The only transition is
// confirmed -> cancelled, driven by a successful cancellation.
type Ticket struct {
	ID         string       `json:"id"`
	UserID     string       `json:"userId"`
	TripID     string       `json:"tripId"`
	SeatNumber string       `json:"seatNumber"`
	Price      float64      `json:"price"`
	Status     TicketStatus `json:"status"`
	CreatedAt  time.Time    `json:"createdAt"`
}
