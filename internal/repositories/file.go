package repositories

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"busline/internal/domain/models"
)

// FileLedger persists each collection as a JSON array in its own file
// under dir, mirroring the in-memory state after every mutation. Reads
// are served from memory.
type FileLedger struct {
	mem *MemoryLedger
	dir string
}

func NewFileLedger(dir string) (*FileLedger, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	f := &FileLedger{mem: NewMemoryLedger(), dir: dir}

	var (
		users         []models.User
		operators     []models.BusOperator
		trips         []models.Trip
		tickets       []models.Ticket
		cancellations []models.Cancellation
		refunds       []models.Refund
	)
	if err := f.read("users.json", &users); err != nil {
		return nil, err
	}
	if err := f.read("operators.json", &operators); err != nil {
		return nil, err
	}
	if err := f.read("trips.json", &trips); err != nil {
		return nil, err
	}
	if err := f.read("tickets.json", &tickets); err != nil {
		return nil, err
	}
	if err := f.read("cancellations.json", &cancellations); err != nil {
		return nil, err
	}
	if err := f.read("refunds.json", &refunds); err != nil {
		return nil, err
	}

	f.mem.load(users, operators, trips, tickets, cancellations, refunds)
	return f, nil
}

// Empty reports whether no collection holds any record, used to decide
// whether demo seeding applies.
func (f *FileLedger) Empty() bool {
	return len(f.mem.ListUsers()) == 0 &&
		len(f.mem.ListTrips()) == 0 &&
		len(f.mem.ListTickets(TicketFilter{})) == 0
}

func (f *FileLedger) read(name string, dst any) error {
	data, err := os.ReadFile(filepath.Join(f.dir, name))
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}
	return nil
}

func (f *FileLedger) write(name string, src any) error {
	data, err := json.MarshalIndent(src, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	if err := os.WriteFile(filepath.Join(f.dir, name), data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}

func (f *FileLedger) CreateUser(user *models.User) error {
	if err := f.mem.CreateUser(user); err != nil {
		return err
	}
	return f.write("users.json", f.mem.ListUsers())
}

func (f *FileLedger) UserByID(id string) (models.User, bool)       { return f.mem.UserByID(id) }
func (f *FileLedger) UserByEmail(email string) (models.User, bool) { return f.mem.UserByEmail(email) }
func (f *FileLedger) ListUsers() []models.User                     { return f.mem.ListUsers() }

func (f *FileLedger) CreateOperator(op *models.BusOperator) error {
	if err := f.mem.CreateOperator(op); err != nil {
		return err
	}
	return f.write("operators.json", f.mem.ListOperators())
}

func (f *FileLedger) OperatorByID(id string) (models.BusOperator, bool) {
	return f.mem.OperatorByID(id)
}
func (f *FileLedger) ListOperators() []models.BusOperator { return f.mem.ListOperators() }

func (f *FileLedger) CreateTrip(trip *models.Trip) error {
	if err := f.mem.CreateTrip(trip); err != nil {
		return err
	}
	return f.write("trips.json", f.mem.ListTrips())
}

func (f *FileLedger) TripByID(id string) (models.Trip, bool) { return f.mem.TripByID(id) }
func (f *FileLedger) ListTrips() []models.Trip               { return f.mem.ListTrips() }

func (f *FileLedger) DecrementSeat(tripID string) error {
	if err := f.mem.DecrementSeat(tripID); err != nil {
		return err
	}
	return f.write("trips.json", f.mem.ListTrips())
}

func (f *FileLedger) CreateTicket(ticket *models.Ticket) error {
	if err := f.mem.CreateTicket(ticket); err != nil {
		return err
	}
	return f.write("tickets.json", f.mem.ListTickets(TicketFilter{}))
}

func (f *FileLedger) TicketByID(id string) (models.Ticket, bool) { return f.mem.TicketByID(id) }
func (f *FileLedger) ListTickets(filter TicketFilter) []models.Ticket {
	return f.mem.ListTickets(filter)
}

func (f *FileLedger) SetTicketStatus(id string, status models.TicketStatus) error {
	if err := f.mem.SetTicketStatus(id, status); err != nil {
		return err
	}
	return f.write("tickets.json", f.mem.ListTickets(TicketFilter{}))
}

func (f *FileLedger) CreateCancellation(c *models.Cancellation) error {
	if err := f.mem.CreateCancellation(c); err != nil {
		return err
	}
	return f.write("cancellations.json", f.mem.ListCancellations(CancellationFilter{}))
}

func (f *FileLedger) CancellationByID(id string) (models.Cancellation, bool) {
	return f.mem.CancellationByID(id)
}

func (f *FileLedger) ListCancellations(filter CancellationFilter) []models.Cancellation {
	return f.mem.ListCancellations(filter)
}

func (f *FileLedger) SetCancellationStatus(id string, status models.CancellationStatus, processedAt *time.Time) error {
	if err := f.mem.SetCancellationStatus(id, status, processedAt); err != nil {
		return err
	}
	return f.write("cancellations.json", f.mem.ListCancellations(CancellationFilter{}))
}

func (f *FileLedger) CreateRefund(r *models.Refund) error {
	if err := f.mem.CreateRefund(r); err != nil {
		return err
	}
	return f.write("refunds.json", f.mem.ListRefunds(RefundFilter{}))
}

func (f *FileLedger) RefundByID(id string) (models.Refund, bool) { return f.mem.RefundByID(id) }

func (f *FileLedger) RefundByCancellationID(cancellationID string) (models.Refund, bool) {
	return f.mem.RefundByCancellationID(cancellationID)
}

func (f *FileLedger) ListRefunds(filter RefundFilter) []models.Refund {
	return f.mem.ListRefunds(filter)
}

func (f *FileLedger) SetRefundStatus(id string, status models.RefundStatus, processedAt *time.Time) error {
	if err := f.mem.SetRefundStatus(id, status, processedAt); err != nil {
		return err
	}
	return f.write("refunds.json", f.mem.ListRefunds(RefundFilter{}))
}
