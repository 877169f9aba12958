package reconcile

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/leaguedesk/league-dues/internal/models"
)

// BilledCharge carries the recorded state of an existing ledger entry into
// the price resolution. A nil BilledCharge means no entry exists yet.
type BilledCharge struct {
	Status    models.PaymentStatus
	AmountDue decimal.Decimal
}

// EffectiveDue resolves the amount a registration owes at a point in time.
//
// A fully paid entry keeps its recorded amount: settled invoices must never
// drift when league pricing changes later. Otherwise the early-bird cost
// applies through the end of the deadline date, and the standard cost after.
// Misconfigured early-bird pricing (cost without deadline, or the reverse)
// falls back to the standard cost rather than failing.
func EffectiveDue(league models.LeagueDue, at time.Time, billed *BilledCharge) decimal.Decimal {
	if billed != nil && billed.Status == models.StatusPaid {
		return billed.AmountDue
	}
	if earlyBirdActive(league, at) {
		return *league.EarlyBirdCost
	}
	return league.StandardCost
}

// earlyBirdActive reports whether the discounted cost still applies at the
// given time. The deadline date is inclusive: a registration at any time on
// the deadline day, up to 23:59:59, still qualifies.
func earlyBirdActive(league models.LeagueDue, at time.Time) bool {
	if league.EarlyBirdCost == nil || league.EarlyBirdDeadline == nil {
		return false
	}
	d := *league.EarlyBirdDeadline
	cutoff := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, d.Location()).AddDate(0, 0, 1)
	return at.Before(cutoff)
}
