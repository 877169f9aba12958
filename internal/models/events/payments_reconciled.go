package events

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentsReconciled is emitted when a reconciliation run surfaces overdue
// registrations for a user.
type PaymentsReconciled struct {
	EventID          string          `json:"event_id"`
	UserID           int64           `json:"user_id"`
	TotalOutstanding decimal.Decimal `json:"total_outstanding"`
	TotalPaid        decimal.Decimal `json:"total_paid"`
	PendingCount     int             `json:"pending_count"`
	OverdueCount     int             `json:"overdue_count"`
	OccurredAt       time.Time       `json:"occurred_at"`
}
