package models

import "time"

type RefundStatus string

const (
	RefundPending    RefundStatus = "pending"
	RefundProcessing RefundStatus = "processing"
	RefundCompleted  RefundStatus = "completed"
	RefundFailed     RefundStatus = "failed"
)

// Refund is the monetary settlement of an eligible, processed
// cancellation. At most one refund exists per cancellation.
// RefundPercentage is derived from the amounts at creation.
type Refund struct {
	ID             string `json:"id"`
	CancellationID string `json:"cancellationId"`
	TicketID       string `json:"ticketId"`
	UserID         string `json:"userId"`

	OriginalAmount   float64 `json:"originalAmount"`
	RefundAmount     float64 `json:"refundAmount"`
	RefundPercentage int     `json:"refundPercentage"`
	Reason           string  `json:"reason"`

	Status                 RefundStatus `json:"status"`
	ExpectedCompletionDate time.Time    `json:"expectedCompletionDate"`
	ProcessedAt            *time.Time   `json:"processedAt,omitempty"`
	CreatedAt              time.Time    `json:"createdAt"`
}
