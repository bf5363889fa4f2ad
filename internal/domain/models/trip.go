package models

import "time"

// Trip is immutable once created, except AvailableSeats which is
// decremented on ticket issuance.
type Trip struct {
	ID         string `json:"id"`
	OperatorID string `json:"operatorId"`
	Route      string `json:"route"`

	// DepartureDate is "2006-01-02", DepartureTime is "3:04 PM". The two
	// combine into the departure instant (see domain.DepartureInstant).
	DepartureDate string `json:"departureDate"`
	DepartureTime string `json:"departureTime"`
	ArrivalDate   string `json:"arrivalDate"`
	ArrivalTime   string `json:"arrivalTime"`

	Price          float64   `json:"price"`
	AvailableSeats int       `json:"availableSeats"`
	TotalSeats     int       `json:"totalSeats"`
	CreatedAt      time.Time `json:"createdAt"`
}
