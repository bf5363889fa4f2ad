package events

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/ThreeDotsLabs/watermill/message"
	"go.uber.org/zap"

	"busline/internal/domain/models"
	"busline/internal/email"
	"busline/internal/repositories"
)

type captureMailer struct {
	sent []email.Message
}

func (m *captureMailer) Send(_ context.Context, msg email.Message) error {
	m.sent = append(m.sent, msg)
	return nil
}

func eventMessage(t *testing.T, payload any) *message.Message {
	t.Helper()
	data, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	return message.NewMessage("test-message", data)
}

func TestHandleCancellationCreatedSendsEmail(t *testing.T) {
	m := repositories.NewMemoryLedger()
	user := models.User{Name: "Jane Smith", Email: "jane@example.com"}
	if err := m.CreateUser(&user); err != nil {
		t.Fatalf("create user: %v", err)
	}

	mailer := &captureMailer{}
	n := &Notifier{Ledger: m, Mailer: mailer, Logger: zap.NewNop()}

	err := n.HandleCancellationCreated(eventMessage(t, CancellationCreated{
		CancellationID:    "1",
		TicketID:          "3",
		UserID:            user.ID,
		RefundEligibility: true,
		RefundAmount:      26.00,
		Policy:            "Cancellation 24 hours before departure: 80% refund",
	}))
	if err != nil {
		t.Fatalf("handle: %v", err)
	}

	if len(mailer.sent) != 1 {
		t.Fatalf("sent = %d emails, want 1", len(mailer.sent))
	}
	msg := mailer.sent[0]
	if msg.To != "jane@example.com" {
		t.Fatalf("to = %q", msg.To)
	}
	if !strings.Contains(msg.HTML, "$26.00") {
		t.Fatalf("body missing refund amount:\n%s", msg.HTML)
	}
}

func TestHandleCancellationCreatedSkipsUserWithoutEmail(t *testing.T) {
	m := repositories.NewMemoryLedger()
	user := models.User{Name: "No Email"}
	if err := m.CreateUser(&user); err != nil {
		t.Fatalf("create user: %v", err)
	}

	mailer := &captureMailer{}
	n := &Notifier{Ledger: m, Mailer: mailer, Logger: zap.NewNop()}

	err := n.HandleCancellationCreated(eventMessage(t, CancellationCreated{
		CancellationID: "1",
		UserID:         user.ID,
	}))
	if err != nil {
		t.Fatalf("handle: %v", err)
	}
	if len(mailer.sent) != 0 {
		t.Fatalf("sent = %d emails, want 0", len(mailer.sent))
	}
}

func TestHandleRefundInitiatedSendsEmail(t *testing.T) {
	m := repositories.NewMemoryLedger()
	user := models.User{Name: "Jane Smith", Email: "jane@example.com"}
	if err := m.CreateUser(&user); err != nil {
		t.Fatalf("create user: %v", err)
	}

	mailer := &captureMailer{}
	n := &Notifier{Ledger: m, Mailer: mailer, Logger: zap.NewNop()}

	err := n.HandleRefundInitiated(eventMessage(t, RefundInitiated{
		RefundID:         "1",
		CancellationID:   "1",
		UserID:           user.ID,
		OriginalAmount:   32.50,
		RefundAmount:     26.00,
		RefundPercentage: 80,
	}))
	if err != nil {
		t.Fatalf("handle: %v", err)
	}

	if len(mailer.sent) != 1 {
		t.Fatalf("sent = %d emails, want 1", len(mailer.sent))
	}
	if !strings.Contains(mailer.sent[0].Subject, "Refund #1") {
		t.Fatalf("subject = %q", mailer.sent[0].Subject)
	}
}

func TestHandleCancellationCreatedBadPayload(t *testing.T) {
	n := &Notifier{Ledger: repositories.NewMemoryLedger(), Mailer: &captureMailer{}, Logger: zap.NewNop()}

	err := n.HandleCancellationCreated(message.NewMessage("bad", []byte("{not json")))
	if err == nil {
		t.Fatal("malformed payload accepted")
	}
}
