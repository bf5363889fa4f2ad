package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"busline/internal/domain/models"
)

// tripDepartingAt builds a trip whose departure fields format the given
// instant.
func tripDepartingAt(at time.Time, price float64) (models.Ticket, models.Trip) {
	ticket := models.Ticket{ID: "1", TripID: "1", Price: price, Status: models.TicketConfirmed}
	trip := models.Trip{
		ID:            "1",
		DepartureDate: at.Format("2006-01-02"),
		DepartureTime: at.Format("3:04 PM"),
		Price:         price,
	}
	return ticket, trip
}

func TestEvaluateRefundFullTier(t *testing.T) {
	now := time.Date(2026, 8, 1, 9, 0, 0, 0, time.Local)
	ticket, trip := tripDepartingAt(now.Add(30*time.Hour), 32.50)

	got := EvaluateRefund(&ticket, &trip, now)

	assert.True(t, got.Eligible)
	assert.Equal(t, 26.00, got.Amount)
	assert.Equal(t, PolicyFullTier, got.Policy)
}

func TestEvaluateRefundPartialTier(t *testing.T) {
	now := time.Date(2026, 8, 1, 9, 0, 0, 0, time.Local)
	ticket, trip := tripDepartingAt(now.Add(10*time.Hour), 32.50)

	got := EvaluateRefund(&ticket, &trip, now)

	assert.True(t, got.Eligible)
	assert.Equal(t, 16.25, got.Amount)
	assert.Equal(t, PolicyPartialTier, got.Policy)
}

func TestEvaluateRefundNoRefundTier(t *testing.T) {
	now := time.Date(2026, 8, 1, 9, 0, 0, 0, time.Local)
	ticket, trip := tripDepartingAt(now.Add(time.Hour), 32.50)

	got := EvaluateRefund(&ticket, &trip, now)

	assert.False(t, got.Eligible)
	assert.Equal(t, 0.0, got.Amount)
	assert.Equal(t, PolicyNoRefund, got.Policy)
}

func TestEvaluateRefundBoundaries(t *testing.T) {
	departure := time.Date(2026, 8, 10, 10, 0, 0, 0, time.Local)
	ticket, trip := tripDepartingAt(departure, 100)

	// Exactly 24 hours before departure falls in the 80% tier.
	got := EvaluateRefund(&ticket, &trip, departure.Add(-24*time.Hour))
	assert.Equal(t, PolicyFullTier, got.Policy)
	assert.Equal(t, 80.0, got.Amount)

	// Exactly 2 hours before departure falls in the 50% tier.
	got = EvaluateRefund(&ticket, &trip, departure.Add(-2*time.Hour))
	assert.Equal(t, PolicyPartialTier, got.Policy)
	assert.Equal(t, 50.0, got.Amount)

	// One minute under 2 hours gives no refund.
	got = EvaluateRefund(&ticket, &trip, departure.Add(-2*time.Hour+time.Minute))
	assert.Equal(t, PolicyNoRefund, got.Policy)

	// After departure gives no refund.
	got = EvaluateRefund(&ticket, &trip, departure.Add(time.Hour))
	assert.Equal(t, PolicyNoRefund, got.Policy)
}

func TestEvaluateRefundMissingEntities(t *testing.T) {
	now := time.Date(2026, 8, 1, 9, 0, 0, 0, time.Local)
	ticket, trip := tripDepartingAt(now.Add(48*time.Hour), 20)

	got := EvaluateRefund(nil, &trip, now)
	assert.False(t, got.Eligible)
	assert.Equal(t, PolicyTicketNotFound, got.Policy)

	got = EvaluateRefund(&ticket, nil, now)
	assert.False(t, got.Eligible)
	assert.Equal(t, PolicyTripNotFound, got.Policy)
}

func TestEvaluateRefundUnparseableDeparture(t *testing.T) {
	ticket := models.Ticket{ID: "1", Price: 20}
	trip := models.Trip{ID: "1", DepartureDate: "not-a-date", DepartureTime: "10:00 AM"}

	got := EvaluateRefund(&ticket, &trip, time.Now())
	assert.False(t, got.Eligible)
	assert.Equal(t, PolicyTripNotFound, got.Policy)
}

func TestEvaluateRefundRoundsToCents(t *testing.T) {
	now := time.Date(2026, 8, 1, 9, 0, 0, 0, time.Local)
	ticket, trip := tripDepartingAt(now.Add(10*time.Hour), 45.99)

	got := EvaluateRefund(&ticket, &trip, now)
	assert.Equal(t, 23.00, got.Amount)
}

func TestRefundPercentage(t *testing.T) {
	assert.Equal(t, 80, RefundPercentage(26.00, 32.50))
	assert.Equal(t, 50, RefundPercentage(16.25, 32.50))
	assert.Equal(t, 0, RefundPercentage(0, 32.50))
	assert.Equal(t, 0, RefundPercentage(10, 0))
}

func TestDepartureInstant(t *testing.T) {
	trip := models.Trip{DepartureDate: "2024-12-20", DepartureTime: "10:00 AM"}

	got, err := DepartureInstant(&trip)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	want := time.Date(2024, 12, 20, 10, 0, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Fatalf("departure = %v, want %v", got, want)
	}
}
