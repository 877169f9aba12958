package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentOrigin says where a payment view came from: a real ledger entry, or
// a roster membership that has not been billed yet.
type PaymentOrigin string

const (
	OriginLedger PaymentOrigin = "ledger"
	OriginRoster PaymentOrigin = "roster"
)

// PaymentView is one reconciled registration as shown to a user. It is
// computed fresh on every reconciliation and never persisted.
//
// LedgerEntryID is set only for OriginLedger views. For OriginRoster views
// the identifying field is TeamID; the reconciler guarantees at most one view
// per team, so (Origin, LedgerEntryID, TeamID) is unique within a result set.
type PaymentView struct {
	Origin            PaymentOrigin   `json:"origin"`
	LedgerEntryID     int64           `json:"ledger_entry_id,omitempty"`
	UserID            int64           `json:"user_id"`
	TeamID            *int64          `json:"team_id,omitempty"`
	LeagueID          int64           `json:"league_id"`
	LeagueName        string          `json:"league_name"`
	TeamName          *string         `json:"team_name,omitempty"`
	AmountDue         decimal.Decimal `json:"amount_due"`
	AmountPaid        decimal.Decimal `json:"amount_paid"`
	AmountOutstanding decimal.Decimal `json:"amount_outstanding"`
	Status            PaymentStatus   `json:"status"`
	DueDate           *time.Time      `json:"due_date,omitempty"`
}

// PaymentSummary is the reduction of a set of payment views into dashboard
// totals.
type PaymentSummary struct {
	TotalOutstanding decimal.Decimal `json:"total_outstanding"`
	TotalPaid        decimal.Decimal `json:"total_paid"`
	PendingCount     int             `json:"pending_count"`
	OverdueCount     int             `json:"overdue_count"`
}
