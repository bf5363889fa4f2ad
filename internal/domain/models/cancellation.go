package models

import "time"

type CancellationStatus string

const (
	CancellationPending   CancellationStatus = "pending"
	CancellationProcessed CancellationStatus = "processed"
	CancellationRejected  CancellationStatus = "rejected"
)

const (
	CancelledByUser     = "user"
	CancelledByOperator = "operator"
	CancelledBySystem   = "system"
)

// Cancellation records a ticket withdrawal. RefundEligibility and
// RefundAmount are a snapshot of the policy evaluation at creation time;
// they are never recomputed, even if the refund is requested after
// departure has passed.
type Cancellation struct {
	ID          string `json:"id"`
	TicketID    string `json:"ticketId"`
	UserID      string `json:"userId"`
	Reason      string `json:"reason"`
	CancelledBy string `json:"cancelledBy"`

	CancellationPolicy string  `json:"cancellationPolicy"`
	RefundEligibility  bool    `json:"refundEligibility"`
	RefundAmount       float64 `json:"refundAmount"`

	Status      CancellationStatus `json:"status"`
	CreatedAt   time.Time          `json:"createdAt"`
	ProcessedAt *time.Time         `json:"processedAt,omitempty"`
}
