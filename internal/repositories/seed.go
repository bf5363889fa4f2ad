package repositories

import (
	"time"

	"busline/internal/domain/models"
)

const seedDateLayout = "2006-01-02"
const seedTimeLayout = "3:04 PM"

// SeedDemo loads the demonstration dataset: three users, two operators,
// three trips, three tickets, one processed cancellation and its refund
// in processing. Departure dates are relative to now so every policy
// tier stays reachable.
func SeedDemo(ledger Ledger) error {
	users := []*models.User{
		{Name: "John Doe", Email: "john.doe@example.com", Phone: "+1234567890", Role: models.RoleUser},
		{Name: "Jane Smith", Email: "jane.smith@example.com", Phone: "+0987654321", Role: models.RoleUser},
		{Name: "Bob Johnson", Email: "bob.johnson@example.com", Role: models.RoleAdmin},
	}
	for _, u := range users {
		if err := ledger.CreateUser(u); err != nil {
			return err
		}
	}

	operators := []*models.BusOperator{
		{Name: "Express Bus Lines", LicenseNumber: "EBL-2024-001", ContactEmail: "info@expressbus.com"},
		{Name: "City Transit Co", LicenseNumber: "CTC-2024-002", ContactEmail: "contact@citytransit.com"},
	}
	for _, op := range operators {
		if err := ledger.CreateOperator(op); err != nil {
			return err
		}
	}

	now := time.Now()
	trips := []*models.Trip{
		seedTrip("1", "New York to Boston", now.Add(5*24*time.Hour), 4*time.Hour+30*time.Minute, 45.99, 30, 40),
		seedTrip("1", "Boston to New York", now.Add(10*24*time.Hour), 4*time.Hour+30*time.Minute, 45.99, 25, 40),
		seedTrip("2", "Chicago to Detroit", now.Add(3*24*time.Hour), 4*time.Hour, 32.50, 15, 35),
	}
	for _, t := range trips {
		if err := ledger.CreateTrip(t); err != nil {
			return err
		}
	}

	tickets := []*models.Ticket{
		{UserID: "1", TripID: "1", SeatNumber: "A12", Price: 45.99},
		{UserID: "1", TripID: "2", SeatNumber: "B05", Price: 45.99},
		{UserID: "2", TripID: "3", SeatNumber: "C08", Price: 32.50},
	}
	for _, t := range tickets {
		if err := ledger.CreateTicket(t); err != nil {
			return err
		}
	}

	// Ticket 3 was cancelled more than 24 hours out: 80% of $32.50.
	cancellation := &models.Cancellation{
		TicketID:           "3",
		UserID:             "2",
		Reason:             "Change of plans",
		CancelledBy:        models.CancelledByUser,
		CancellationPolicy: "Cancellation 24 hours before departure: 80% refund",
		RefundEligibility:  true,
		RefundAmount:       26.00,
	}
	if err := ledger.CreateCancellation(cancellation); err != nil {
		return err
	}
	if err := ledger.SetTicketStatus("3", models.TicketCancelled); err != nil {
		return err
	}
	processedAt := now
	if err := ledger.SetCancellationStatus(cancellation.ID, models.CancellationProcessed, &processedAt); err != nil {
		return err
	}

	refund := &models.Refund{
		CancellationID:         cancellation.ID,
		TicketID:               "3",
		UserID:                 "2",
		OriginalAmount:         32.50,
		RefundAmount:           26.00,
		RefundPercentage:       80,
		Reason:                 "Change of plans",
		Status:                 models.RefundProcessing,
		ExpectedCompletionDate: now.Add(7 * 24 * time.Hour),
	}
	return ledger.CreateRefund(refund)
}

func seedTrip(operatorID, route string, departure time.Time, duration time.Duration, price float64, available, total int) *models.Trip {
	arrival := departure.Add(duration)
	return &models.Trip{
		OperatorID:     operatorID,
		Route:          route,
		DepartureDate:  departure.Format(seedDateLayout),
		DepartureTime:  departure.Format(seedTimeLayout),
		ArrivalDate:    arrival.Format(seedDateLayout),
		ArrivalTime:    arrival.Format(seedTimeLayout),
		Price:          price,
		AvailableSeats: available,
		TotalSeats:     total,
	}
}
