package services

import (
	"strings"

	"busline/internal/domain"
	"busline/internal/domain/models"
	"busline/internal/repositories"
	"busline/internal/utils"
)

// TripService manages the trip catalogue. Trips are immutable after
// creation except for the seat counter owned by ticket issuance.
type TripService struct {
	Ledger    repositories.Ledger
	RequestID string
}

type NewTrip struct {
	OperatorID    string  `json:"operatorId"`
	Route         string  `json:"route"`
	DepartureDate string  `json:"departureDate"`
	DepartureTime string  `json:"departureTime"`
	ArrivalDate   string  `json:"arrivalDate"`
	ArrivalTime   string  `json:"arrivalTime"`
	Price         float64 `json:"price"`
	TotalSeats    int     `json:"totalSeats"`
}

func (s TripService) Create(in NewTrip) (models.Trip, error) {
	in.OperatorID = strings.TrimSpace(in.OperatorID)
	in.Route = strings.TrimSpace(in.Route)

	switch {
	case in.OperatorID == "":
		return models.Trip{}, domain.Invalid("operatorId", "is required")
	case in.Route == "":
		return models.Trip{}, domain.Invalid("route", "is required")
	case in.Price <= 0:
		return models.Trip{}, domain.Invalid("price", "must be positive")
	case in.TotalSeats <= 0:
		return models.Trip{}, domain.Invalid("totalSeats", "must be positive")
	}

	trip := models.Trip{
		OperatorID:     in.OperatorID,
		Route:          in.Route,
		DepartureDate:  strings.TrimSpace(in.DepartureDate),
		DepartureTime:  strings.TrimSpace(in.DepartureTime),
		ArrivalDate:    strings.TrimSpace(in.ArrivalDate),
		ArrivalTime:    strings.TrimSpace(in.ArrivalTime),
		Price:          in.Price,
		AvailableSeats: in.TotalSeats,
		TotalSeats:     in.TotalSeats,
	}

	// The departure date/time pair must form a parseable instant or the
	// refund policy can never evaluate tickets on this trip.
	if _, err := domain.DepartureInstant(&trip); err != nil {
		return models.Trip{}, domain.Invalid("departureDate", `must combine with departureTime as "2006-01-02 3:04 PM"`)
	}

	if _, ok := s.Ledger.OperatorByID(in.OperatorID); !ok {
		return models.Trip{}, domain.NotFound("operator", in.OperatorID)
	}

	if err := s.Ledger.CreateTrip(&trip); err != nil {
		return models.Trip{}, err
	}

	utils.LogEvent(s.RequestID, "trip", "create", "trip_id="+trip.ID)
	return trip, nil
}

func (s TripService) Get(id string) (models.Trip, error) {
	trip, ok := s.Ledger.TripByID(id)
	if !ok {
		return models.Trip{}, domain.NotFound("trip", id)
	}
	return trip, nil
}

func (s TripService) List() []models.Trip {
	return s.Ledger.ListTrips()
}
