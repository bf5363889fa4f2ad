package services

import (
	"bytes"
	"testing"
	"time"

	"busline/internal/domain"
	"busline/internal/repositories"
)

func TestGenerateETicket(t *testing.T) {
	m, ticketID := newFixtureLedger(t, fixedNow.Add(48*time.Hour), 32.50, 10)
	svc := DocsService{Ledger: m}

	pdf, filename, err := svc.GenerateETicket(ticketID)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Fatal("output is not a PDF")
	}
	if filename != "ETICKET_1_12A.pdf" {
		t.Fatalf("filename = %q, want ETICKET_1_12A.pdf", filename)
	}
}

func TestGenerateETicketMissing(t *testing.T) {
	m := repositories.NewMemoryLedger()
	svc := DocsService{Ledger: m}

	if _, _, err := svc.GenerateETicket("404"); !domain.IsNotFound(err) {
		t.Fatalf("err = %v, want not found", err)
	}
}

func TestGenerateRefundReceipt(t *testing.T) {
	m, ticketID := newFixtureLedger(t, fixedNow.Add(30*time.Hour), 32.50, 10)
	cancellation := processedEligibleCancellation(t, m, ticketID)

	refundSvc := RefundService{Ledger: m, Now: func() time.Time { return fixedNow }}
	refund, err := refundSvc.Create(cancellation.ID)
	if err != nil {
		t.Fatalf("create refund: %v", err)
	}

	svc := DocsService{Ledger: m}
	pdf, filename, err := svc.GenerateRefundReceipt(refund.ID)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Fatal("output is not a PDF")
	}
	if filename != "REFUND_"+refund.ID+".pdf" {
		t.Fatalf("filename = %q, want REFUND_%s.pdf", filename, refund.ID)
	}
}

func TestGenerateRefundReceiptMissing(t *testing.T) {
	m := repositories.NewMemoryLedger()
	svc := DocsService{Ledger: m}

	if _, _, err := svc.GenerateRefundReceipt("404"); !domain.IsNotFound(err) {
		t.Fatalf("err = %v, want not found", err)
	}
}
