package reconcile

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/leaguedesk/league-dues/internal/models"
)

// DefaultVirtualDueIn is how far in the future a synthesized obligation's due
// date lands when its league does not configure one.
const DefaultVirtualDueIn = 30 * 24 * time.Hour

// Reconciler turns a user's ledger entries and roster memberships into one
// payment view per registration. It holds no state between calls; identical
// inputs and reference time always produce identical output.
type Reconciler struct {
	virtualDueIn time.Duration
}

// NewReconciler creates a reconciler. A non-positive virtualDueIn falls back
// to DefaultVirtualDueIn.
func NewReconciler(virtualDueIn time.Duration) *Reconciler {
	if virtualDueIn <= 0 {
		virtualDueIn = DefaultVirtualDueIn
	}
	return &Reconciler{virtualDueIn: virtualDueIn}
}

// Reconcile produces the payment views for userID at the given reference
// time.
//
// Real ledger entries come first, one view each, with their due amount
// re-resolved against current pricing (except Paid entries, which keep their
// recorded amount). Then every roster membership without a ledger entry for
// its team gets a virtual Pending view, unless the league is free. A team
// with both a ledger entry and a membership yields exactly one view, the
// real one. Registrations whose league has no pricing config are skipped
// individually; the rest of the result is unaffected.
func (r *Reconciler) Reconcile(
	userID int64,
	entries []models.LedgerEntry,
	memberships []models.TeamMembership,
	leaguesByID map[int64]models.LeagueDue,
	now time.Time,
) []models.PaymentView {
	teamNames := make(map[int64]string, len(memberships))
	for _, m := range memberships {
		teamNames[m.TeamID] = m.TeamName
	}

	views := make([]models.PaymentView, 0, len(entries)+len(memberships))
	billedTeams := make(map[int64]bool, len(entries))

	for _, e := range entries {
		if e.UserID != userID {
			continue
		}
		league, ok := leaguesByID[e.LeagueID]
		if !ok {
			continue
		}
		due := EffectiveDue(league, now, &BilledCharge{Status: e.Status, AmountDue: e.AmountDue})
		outstanding := due.Sub(e.AmountPaid)
		if outstanding.IsNegative() {
			outstanding = decimal.Zero
		}
		view := models.PaymentView{
			Origin:            models.OriginLedger,
			LedgerEntryID:     e.ID,
			UserID:            userID,
			TeamID:            e.TeamID,
			LeagueID:          e.LeagueID,
			LeagueName:        league.Name,
			AmountDue:         due,
			AmountPaid:        e.AmountPaid,
			AmountOutstanding: outstanding,
			Status:            e.Status,
			DueDate:           e.DueDate,
		}
		if e.TeamID != nil {
			billedTeams[*e.TeamID] = true
			if name, ok := teamNames[*e.TeamID]; ok {
				view.TeamName = &name
			}
		}
		views = append(views, view)
	}

	for _, m := range memberships {
		if !m.UserIsOnRoster || billedTeams[m.TeamID] {
			continue
		}
		league, ok := leaguesByID[m.LeagueID]
		if !ok {
			continue
		}
		// Free leagues never owe money and must not surface at all.
		if !league.StandardCost.IsPositive() {
			continue
		}
		due := EffectiveDue(league, now, nil)
		dueDate := league.PaymentDueDate
		if dueDate == nil {
			fallback := now.Add(r.virtualDueIn)
			dueDate = &fallback
		}
		teamID := m.TeamID
		teamName := m.TeamName
		views = append(views, models.PaymentView{
			Origin:            models.OriginRoster,
			UserID:            userID,
			TeamID:            &teamID,
			LeagueID:          m.LeagueID,
			LeagueName:        league.Name,
			TeamName:          &teamName,
			AmountDue:         due,
			AmountPaid:        decimal.Zero,
			AmountOutstanding: due,
			Status:            models.StatusPending,
			DueDate:           dueDate,
		})
	}

	return views
}
