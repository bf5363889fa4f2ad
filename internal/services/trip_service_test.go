package services

import (
	"testing"

	"busline/internal/domain"
	"busline/internal/domain/models"
	"busline/internal/repositories"
)

func newTripInput() NewTrip {
	return NewTrip{
		OperatorID:    "1",
		Route:         "Springfield - Shelbyville",
		DepartureDate: "2026-09-20",
		DepartureTime: "10:00 AM",
		ArrivalDate:   "2026-09-20",
		ArrivalTime:   "2:30 PM",
		Price:         32.50,
		TotalSeats:    40,
	}
}

func TestTripCreate(t *testing.T) {
	m := repositories.NewMemoryLedger()
	operator := models.BusOperator{Name: "Express Bus Lines"}
	if err := m.CreateOperator(&operator); err != nil {
		t.Fatalf("create operator: %v", err)
	}

	svc := TripService{Ledger: m}
	trip, err := svc.Create(newTripInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if trip.AvailableSeats != 40 || trip.TotalSeats != 40 {
		t.Fatalf("seats = %d/%d, want 40/40", trip.AvailableSeats, trip.TotalSeats)
	}
	if _, err := domain.DepartureInstant(&trip); err != nil {
		t.Fatalf("stored departure unparseable: %v", err)
	}
}

func TestTripCreateValidation(t *testing.T) {
	m := repositories.NewMemoryLedger()
	operator := models.BusOperator{Name: "Express Bus Lines"}
	if err := m.CreateOperator(&operator); err != nil {
		t.Fatalf("create operator: %v", err)
	}
	svc := TripService{Ledger: m}

	in := newTripInput()
	in.OperatorID = ""
	if _, err := svc.Create(in); !domain.IsValidation(err) {
		t.Fatalf("empty operator err = %v, want validation", err)
	}

	in = newTripInput()
	in.Price = 0
	if _, err := svc.Create(in); !domain.IsValidation(err) {
		t.Fatalf("zero price err = %v, want validation", err)
	}

	in = newTripInput()
	in.TotalSeats = -1
	if _, err := svc.Create(in); !domain.IsValidation(err) {
		t.Fatalf("negative seats err = %v, want validation", err)
	}

	in = newTripInput()
	in.DepartureTime = "25:00"
	if _, err := svc.Create(in); !domain.IsValidation(err) {
		t.Fatalf("bad departure time err = %v, want validation", err)
	}

	in = newTripInput()
	in.OperatorID = "999"
	if _, err := svc.Create(in); !domain.IsNotFound(err) {
		t.Fatalf("unknown operator err = %v, want not found", err)
	}
}
