package services

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/phpdave11/gofpdf"

	"busline/internal/domain"
	"busline/internal/domain/models"
	"busline/internal/repositories"
	"busline/internal/utils"
)

// DocsService renders passenger-facing PDFs: the e-ticket for a booked
// seat and the receipt for an initiated refund.
type DocsService struct {
	Ledger    repositories.Ledger
	RequestID string
}

func (s DocsService) GenerateETicket(ticketID string) ([]byte, string, error) {
	ticket, ok := s.Ledger.TicketByID(ticketID)
	if !ok {
		return nil, "", domain.NotFound("ticket", ticketID)
	}
	trip, ok := s.Ledger.TripByID(ticket.TripID)
	if !ok {
		return nil, "", domain.Internal("ticket references unknown trip", nil)
	}
	user, _ := s.Ledger.UserByID(ticket.UserID)

	utils.LogEvent(s.RequestID, "docs", "generate_eticket", "ticket_id="+ticketID)
	return buildETicketPDF(ticket, trip, user)
}

func (s DocsService) GenerateRefundReceipt(refundID string) ([]byte, string, error) {
	refund, ok := s.Ledger.RefundByID(refundID)
	if !ok {
		return nil, "", domain.NotFound("refund", refundID)
	}
	user, _ := s.Ledger.UserByID(refund.UserID)

	utils.LogEvent(s.RequestID, "docs", "generate_refund_receipt", "refund_id="+refundID)
	return buildRefundReceiptPDF(refund, user)
}

func buildETicketPDF(ticket models.Ticket, trip models.Trip, user models.User) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("E-Ticket", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "E-TICKET")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Passenger   : %s", orDash(user.Name)),
		fmt.Sprintf("Route       : %s", orDash(trip.Route)),
		fmt.Sprintf("Departure   : %s %s", trip.DepartureDate, trip.DepartureTime),
		fmt.Sprintf("Arrival     : %s %s", trip.ArrivalDate, trip.ArrivalTime),
		fmt.Sprintf("Seat        : %s", orDash(ticket.SeatNumber)),
		fmt.Sprintf("Fare        : %s", utils.FormatMoney(ticket.Price)),
		fmt.Sprintf("Status      : %s", ticket.Status),
		fmt.Sprintf("Ticket code : TCK-%s-%s", ticket.ID, safeFilenamePart(ticket.SeatNumber)),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "This e-ticket is valid for one passenger (one seat). Please present it at boarding.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("ETICKET_%s_%s.pdf", ticket.ID, safeFilenamePart(ticket.SeatNumber))
	return buf.Bytes(), filename, nil
}

func buildRefundReceiptPDF(refund models.Refund, user models.User) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Refund Receipt", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "REFUND RECEIPT")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Receipt no.     : RFD-%s", refund.ID),
		fmt.Sprintf("Issued          : %s", time.Now().Format("2006-01-02 15:04")),
		fmt.Sprintf("Passenger       : %s", orDash(user.Name)),
		fmt.Sprintf("Ticket          : #%s", refund.TicketID),
		fmt.Sprintf("Original amount : %s", utils.FormatMoney(refund.OriginalAmount)),
		fmt.Sprintf("Refund amount   : %s (%d%%)", utils.FormatMoney(refund.RefundAmount), refund.RefundPercentage),
		fmt.Sprintf("Status          : %s", refund.Status),
		fmt.Sprintf("Expected by     : %s", refund.ExpectedCompletionDate.Format("2006-01-02")),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("REFUND_%s.pdf", refund.ID)
	return buf.Bytes(), filename, nil
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

func safeFilenamePart(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "X"
	}
	var out strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			out.WriteRune(r)
		default:
			out.WriteByte('_')
		}
	}
	return out.String()
}
