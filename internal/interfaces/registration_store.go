package interfaces

import (
	"context"

	"github.com/leaguedesk/league-dues/internal/models"
)

// RegistrationStore supplies the three inputs reconciliation needs for a
// user. LeaguesByUser must cover every league referenced by that user's
// ledger entries or roster memberships. The three fetches are independent
// and may be issued concurrently.
type RegistrationStore interface {
	LedgerEntriesByUser(ctx context.Context, userID int64) ([]models.LedgerEntry, error)
	MembershipsByUser(ctx context.Context, userID int64) ([]models.TeamMembership, error)
	LeaguesByUser(ctx context.Context, userID int64) (map[int64]models.LeagueDue, error)
}
