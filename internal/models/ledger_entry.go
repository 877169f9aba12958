package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus is the billing state of a ledger entry.
type PaymentStatus string

const (
	StatusPending PaymentStatus = "PENDING"
	StatusPartial PaymentStatus = "PARTIAL"
	StatusPaid    PaymentStatus = "PAID"
	StatusOverdue PaymentStatus = "OVERDUE"
)

// PaymentMethod records how a payment was made.
type PaymentMethod string

const (
	MethodETransfer PaymentMethod = "ETRANSFER"
	MethodCash      PaymentMethod = "CASH"
	MethodCheque    PaymentMethod = "CHEQUE"
	MethodCard      PaymentMethod = "CARD"
)

// LedgerEntry is a persisted billing record for a registration.
// A nil TeamID means an individual (non-team) league registration.
// Entries are created and mutated by the billing flow, never by this service.
type LedgerEntry struct {
	ID            int64           `json:"id"`
	UserID        int64           `json:"user_id"`
	TeamID        *int64          `json:"team_id,omitempty"`
	LeagueID      int64           `json:"league_id"`
	AmountDue     decimal.Decimal `json:"amount_due"`
	AmountPaid    decimal.Decimal `json:"amount_paid"`
	Status        PaymentStatus   `json:"status"`
	DueDate       *time.Time      `json:"due_date,omitempty"`
	PaymentMethod *PaymentMethod  `json:"payment_method,omitempty"`
}
