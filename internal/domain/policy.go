package domain

import (
	"math"
	"time"

	"busline/internal/domain/models"
)

// Policy labels reported on cancellations. The label records which tier
// applied at the moment the snapshot was taken.
const (
	PolicyFullTier    = "Cancellation 24 hours before departure: 80% refund"
	PolicyPartialTier = "Cancellation 2-24 hours before departure: 50% refund"
	PolicyNoRefund    = "Cancellation less than 2 hours before departure: No refund"

	PolicyTicketNotFound = "Ticket not found"
	PolicyTripNotFound   = "Trip not found"
)

// departureLayout combines Trip.DepartureDate and Trip.DepartureTime,
// e.g. "2024-12-20 10:00 AM".
const departureLayout = "2006-01-02 3:04 PM"

// Eligibility is the result of a refund policy evaluation.
type Eligibility struct {
	Eligible bool    `json:"eligible"`
	Amount   float64 `json:"amount"`
	Policy   string  `json:"policy"`
}

// DepartureInstant parses the trip's departure date and time into a
// single instant in the local timezone.
func DepartureInstant(trip *models.Trip) (time.Time, error) {
	return time.ParseInLocation(departureLayout, trip.DepartureDate+" "+trip.DepartureTime, time.Local)
}

// EvaluateRefund applies the tiered cancellation policy at the given
// instant. It is pure: callers decide when to snapshot the result.
// A nil ticket or trip yields an ineligible result with a diagnostic
// label so callers can translate it to a not-found response.
func EvaluateRefund(ticket *models.Ticket, trip *models.Trip, now time.Time) Eligibility {
	if ticket == nil {
		return Eligibility{Policy: PolicyTicketNotFound}
	}
	if trip == nil {
		return Eligibility{Policy: PolicyTripNotFound}
	}

	departure, err := DepartureInstant(trip)
	if err != nil {
		return Eligibility{Policy: PolicyTripNotFound}
	}

	hoursUntilDeparture := departure.Sub(now).Hours()

	switch {
	case hoursUntilDeparture >= 24:
		return Eligibility{
			Eligible: true,
			Amount:   round2(ticket.Price * 0.8),
			Policy:   PolicyFullTier,
		}
	case hoursUntilDeparture >= 2:
		return Eligibility{
			Eligible: true,
			Amount:   round2(ticket.Price * 0.5),
			Policy:   PolicyPartialTier,
		}
	default:
		return Eligibility{Policy: PolicyNoRefund}
	}
}

// RefundPercentage derives the percentage from the amounts, matching
// currency display rounding.
func RefundPercentage(refundAmount, originalAmount float64) int {
	if originalAmount == 0 {
		return 0
	}
	return int(math.Round(refundAmount / originalAmount * 100))
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
