package services

import (
	"testing"
	"time"

	"busline/internal/domain/models"
	"busline/internal/repositories"
)

// fixedNow anchors policy evaluation in tests.
var fixedNow = time.Date(2026, 8, 15, 9, 0, 0, 0, time.Local)

// newFixtureLedger seeds one user, one operator, one trip departing at
// the given instant, and one confirmed ticket on it. Returns the ledger
// and the ticket ID.
func newFixtureLedger(t *testing.T, departure time.Time, price float64, seats int) (*repositories.MemoryLedger, string) {
	t.Helper()

	m := repositories.NewMemoryLedger()

	user := models.User{Name: "Alice", Email: "alice@example.com", Role: models.RoleUser}
	if err := m.CreateUser(&user); err != nil {
		t.Fatalf("fixture user: %v", err)
	}
	operator := models.BusOperator{Name: "Express Bus Lines", LicenseNumber: "EBL-1"}
	if err := m.CreateOperator(&operator); err != nil {
		t.Fatalf("fixture operator: %v", err)
	}
	trip := models.Trip{
		OperatorID:     operator.ID,
		Route:          "Springfield - Shelbyville",
		DepartureDate:  departure.Format("2006-01-02"),
		DepartureTime:  departure.Format("3:04 PM"),
		Price:          price,
		AvailableSeats: seats,
		TotalSeats:     seats,
	}
	if err := m.CreateTrip(&trip); err != nil {
		t.Fatalf("fixture trip: %v", err)
	}
	ticket := models.Ticket{UserID: user.ID, TripID: trip.ID, SeatNumber: "12A", Price: price}
	if err := m.CreateTicket(&ticket); err != nil {
		t.Fatalf("fixture ticket: %v", err)
	}

	return m, ticket.ID
}

// processedEligibleCancellation walks a ticket through cancellation and
// admin processing so refund tests start from a valid state.
func processedEligibleCancellation(t *testing.T, m *repositories.MemoryLedger, ticketID string) models.Cancellation {
	t.Helper()

	svc := CancellationService{Ledger: m, Now: func() time.Time { return fixedNow }}
	cancellation, err := svc.Create(ticketID, "change of plans", "")
	if err != nil {
		t.Fatalf("fixture cancellation: %v", err)
	}
	processed, err := svc.Process(cancellation.ID)
	if err != nil {
		t.Fatalf("fixture process: %v", err)
	}
	return processed
}
