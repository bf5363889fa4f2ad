package repositories

import (
	"os"
	"path/filepath"
	"testing"

	"busline/internal/domain/models"
)

func TestFileLedgerRoundTrip(t *testing.T) {
	dir := t.TempDir()

	first, err := NewFileLedger(dir)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if !first.Empty() {
		t.Fatal("fresh store should be empty")
	}

	user := models.User{Name: "Alice", Email: "alice@example.com", Role: models.RoleUser}
	if err := first.CreateUser(&user); err != nil {
		t.Fatalf("create user: %v", err)
	}
	trip := models.Trip{
		OperatorID:     "1",
		Route:          "Springfield - Shelbyville",
		DepartureDate:  "2026-09-20",
		DepartureTime:  "10:00 AM",
		Price:          32.50,
		AvailableSeats: 40,
		TotalSeats:     40,
	}
	if err := first.CreateTrip(&trip); err != nil {
		t.Fatalf("create trip: %v", err)
	}
	ticket := models.Ticket{UserID: user.ID, TripID: trip.ID, SeatNumber: "12A", Price: trip.Price}
	if err := first.CreateTicket(&ticket); err != nil {
		t.Fatalf("create ticket: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "tickets.json")); err != nil {
		t.Fatalf("tickets.json not written: %v", err)
	}

	// A second ledger over the same directory sees everything.
	second, err := NewFileLedger(dir)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if second.Empty() {
		t.Fatal("reopened store should not be empty")
	}

	gotTicket, ok := second.TicketByID(ticket.ID)
	if !ok {
		t.Fatalf("ticket %s missing after reload", ticket.ID)
	}
	if gotTicket.Price != 32.50 || gotTicket.SeatNumber != "12A" {
		t.Fatalf("ticket = %+v, want price 32.50 seat 12A", gotTicket)
	}
	if gotTicket.Status != models.TicketConfirmed {
		t.Fatalf("status = %q, want confirmed", gotTicket.Status)
	}
}

func TestFileLedgerIDAllocationSurvivesReload(t *testing.T) {
	dir := t.TempDir()

	first, err := NewFileLedger(dir)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	u1 := models.User{Name: "Alice"}
	u2 := models.User{Name: "Bob"}
	if err := first.CreateUser(&u1); err != nil {
		t.Fatalf("create u1: %v", err)
	}
	if err := first.CreateUser(&u2); err != nil {
		t.Fatalf("create u2: %v", err)
	}

	second, err := NewFileLedger(dir)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	u3 := models.User{Name: "Carol"}
	if err := second.CreateUser(&u3); err != nil {
		t.Fatalf("create u3: %v", err)
	}
	if u3.ID != "3" {
		t.Fatalf("id after reload = %q, want 3", u3.ID)
	}
}

func TestFileLedgerRefundIndexRebuiltOnReload(t *testing.T) {
	dir := t.TempDir()

	first, err := NewFileLedger(dir)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	refund := models.Refund{CancellationID: "5", TicketID: "2", UserID: "1", RefundAmount: 26}
	if err := first.CreateRefund(&refund); err != nil {
		t.Fatalf("create refund: %v", err)
	}

	second, err := NewFileLedger(dir)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	got, ok := second.RefundByCancellationID("5")
	if !ok || got.ID != refund.ID {
		t.Fatalf("refund index not rebuilt, got %+v ok=%v", got, ok)
	}

	dup := models.Refund{CancellationID: "5", TicketID: "2", UserID: "1"}
	if err := second.CreateRefund(&dup); err == nil {
		t.Fatal("duplicate refund accepted after reload")
	}
}
