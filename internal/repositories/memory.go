package repositories

import (
	"strconv"
	"sync"
	"time"

	"busline/internal/domain"
	"busline/internal/domain/models"
)

// MemoryLedger keeps every collection in process memory. A single mutex
// serializes mutations; contention is negligible at this scale and it
// keeps the duplicate-refund check-then-act atomic.
type MemoryLedger struct {
	mu sync.RWMutex

	users         []models.User
	operators     []models.BusOperator
	trips         []models.Trip
	tickets       []models.Ticket
	cancellations []models.Cancellation
	refunds       []models.Refund

	// refundByCancellation indexes cancellationID -> refunds position for
	// O(1) duplicate checks.
	refundByCancellation map[string]int

	seq map[string]int64
}

func NewMemoryLedger() *MemoryLedger {
	return &MemoryLedger{
		refundByCancellation: map[string]int{},
		seq:                  map[string]int64{},
	}
}

// nextID assigns monotonically increasing string IDs per collection,
// collision-free for the process lifetime. Callers hold the lock.
func (m *MemoryLedger) nextID(kind string) string {
	m.seq[kind]++
	return strconv.FormatInt(m.seq[kind], 10)
}

// bumpSeq keeps the allocator ahead of IDs loaded from disk. Callers
// hold the lock.
func (m *MemoryLedger) bumpSeq(kind, id string) {
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return
	}
	if n > m.seq[kind] {
		m.seq[kind] = n
	}
}

func (m *MemoryLedger) CreateUser(user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	user.ID = m.nextID("users")
	user.CreatedAt = time.Now()
	m.users = append(m.users, *user)
	return nil
}

func (m *MemoryLedger) UserByID(id string) (models.User, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, u := range m.users {
		if u.ID == id {
			return u, true
		}
	}
	return models.User{}, false
}

func (m *MemoryLedger) UserByEmail(email string) (models.User, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, u := range m.users {
		if u.Email != "" && u.Email == email {
			return u, true
		}
	}
	return models.User{}, false
}

func (m *MemoryLedger) ListUsers() []models.User {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]models.User, len(m.users))
	copy(out, m.users)
	return out
}

func (m *MemoryLedger) CreateOperator(op *models.BusOperator) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	op.ID = m.nextID("operators")
	op.CreatedAt = time.Now()
	m.operators = append(m.operators, *op)
	return nil
}

func (m *MemoryLedger) OperatorByID(id string) (models.BusOperator, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, op := range m.operators {
		if op.ID == id {
			return op, true
		}
	}
	return models.BusOperator{}, false
}

func (m *MemoryLedger) ListOperators() []models.BusOperator {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]models.BusOperator, len(m.operators))
	copy(out, m.operators)
	return out
}

func (m *MemoryLedger) CreateTrip(trip *models.Trip) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	trip.ID = m.nextID("trips")
	trip.CreatedAt = time.Now()
	m.trips = append(m.trips, *trip)
	return nil
}

func (m *MemoryLedger) TripByID(id string) (models.Trip, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, t := range m.trips {
		if t.ID == id {
			return t, true
		}
	}
	return models.Trip{}, false
}

func (m *MemoryLedger) ListTrips() []models.Trip {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]models.Trip, len(m.trips))
	copy(out, m.trips)
	return out
}

func (m *MemoryLedger) DecrementSeat(tripID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.trips {
		if m.trips[i].ID != tripID {
			continue
		}
		if m.trips[i].AvailableSeats <= 0 {
			return domain.Conflict("trip", "no seats available")
		}
		m.trips[i].AvailableSeats--
		return nil
	}
	return domain.NotFound("trip", tripID)
}

func (m *MemoryLedger) CreateTicket(ticket *models.Ticket) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	ticket.ID = m.nextID("tickets")
	ticket.Status = models.TicketConfirmed
	ticket.CreatedAt = time.Now()
	m.tickets = append(m.tickets, *ticket)
	return nil
}

func (m *MemoryLedger) TicketByID(id string) (models.Ticket, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, t := range m.tickets {
		if t.ID == id {
			return t, true
		}
	}
	return models.Ticket{}, false
}

func (m *MemoryLedger) ListTickets(filter TicketFilter) []models.Ticket {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := []models.Ticket{}
	for _, t := range m.tickets {
		if filter.UserID != "" && t.UserID != filter.UserID {
			continue
		}
		out = append(out, t)
	}
	return out
}

func (m *MemoryLedger) SetTicketStatus(id string, status models.TicketStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.tickets {
		if m.tickets[i].ID == id {
			m.tickets[i].Status = status
			return nil
		}
	}
	return domain.NotFound("ticket", id)
}

func (m *MemoryLedger) CreateCancellation(c *models.Cancellation) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	// At most one non-rejected cancellation per ticket. Checked under the
	// same lock as the insert.
	for _, existing := range m.cancellations {
		if existing.TicketID == c.TicketID && existing.Status != models.CancellationRejected {
			return domain.Conflict("cancellation", "ticket already has an active cancellation")
		}
	}

	c.ID = m.nextID("cancellations")
	c.Status = models.CancellationPending
	c.CreatedAt = time.Now()
	m.cancellations = append(m.cancellations, *c)
	return nil
}

func (m *MemoryLedger) CancellationByID(id string) (models.Cancellation, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, c := range m.cancellations {
		if c.ID == id {
			return c, true
		}
	}
	return models.Cancellation{}, false
}

func (m *MemoryLedger) ListCancellations(filter CancellationFilter) []models.Cancellation {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := []models.Cancellation{}
	for _, c := range m.cancellations {
		if filter.UserID != "" && c.UserID != filter.UserID {
			continue
		}
		if filter.TicketID != "" && c.TicketID != filter.TicketID {
			continue
		}
		out = append(out, c)
	}
	return out
}

func (m *MemoryLedger) SetCancellationStatus(id string, status models.CancellationStatus, processedAt *time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.cancellations {
		if m.cancellations[i].ID == id {
			m.cancellations[i].Status = status
			if processedAt != nil {
				m.cancellations[i].ProcessedAt = processedAt
			}
			return nil
		}
	}
	return domain.NotFound("cancellation", id)
}

func (m *MemoryLedger) CreateRefund(r *models.Refund) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	// 1:1 with cancellations, enforced atomically with the insert.
	if _, exists := m.refundByCancellation[r.CancellationID]; exists {
		return domain.Conflict("refund", "refund already exists for this cancellation")
	}

	r.ID = m.nextID("refunds")
	r.CreatedAt = time.Now()
	m.refunds = append(m.refunds, *r)
	m.refundByCancellation[r.CancellationID] = len(m.refunds) - 1
	return nil
}

func (m *MemoryLedger) RefundByID(id string) (models.Refund, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, r := range m.refunds {
		if r.ID == id {
			return r, true
		}
	}
	return models.Refund{}, false
}

func (m *MemoryLedger) RefundByCancellationID(cancellationID string) (models.Refund, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	i, ok := m.refundByCancellation[cancellationID]
	if !ok {
		return models.Refund{}, false
	}
	return m.refunds[i], true
}

func (m *MemoryLedger) ListRefunds(filter RefundFilter) []models.Refund {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := []models.Refund{}
	for _, r := range m.refunds {
		if filter.UserID != "" && r.UserID != filter.UserID {
			continue
		}
		out = append(out, r)
	}
	return out
}

func (m *MemoryLedger) SetRefundStatus(id string, status models.RefundStatus, processedAt *time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.refunds {
		if m.refunds[i].ID == id {
			m.refunds[i].Status = status
			if processedAt != nil {
				m.refunds[i].ProcessedAt = processedAt
			}
			return nil
		}
	}
	return domain.NotFound("refund", id)
}

// load replaces a collection wholesale. Used by the file-backed store
// when reading its snapshot at startup.
func (m *MemoryLedger) load(
	users []models.User,
	operators []models.BusOperator,
	trips []models.Trip,
	tickets []models.Ticket,
	cancellations []models.Cancellation,
	refunds []models.Refund,
) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.users = users
	m.operators = operators
	m.trips = trips
	m.tickets = tickets
	m.cancellations = cancellations
	m.refunds = refunds

	m.refundByCancellation = map[string]int{}
	for i, r := range refunds {
		m.refundByCancellation[r.CancellationID] = i
	}

	for _, u := range users {
		m.bumpSeq("users", u.ID)
	}
	for _, op := range operators {
		m.bumpSeq("operators", op.ID)
	}
	for _, t := range trips {
		m.bumpSeq("trips", t.ID)
	}
	for _, t := range tickets {
		m.bumpSeq("tickets", t.ID)
	}
	for _, c := range cancellations {
		m.bumpSeq("cancellations", c.ID)
	}
	for _, r := range refunds {
		m.bumpSeq("refunds", r.ID)
	}
}
