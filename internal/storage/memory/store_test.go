package memory

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leaguedesk/league-dues/internal/models"
)

func seededStore() *MemoryRegistrationStore {
	store := NewMemoryRegistrationStore()
	store.AddLeague(models.LeagueDue{LeagueID: 1, Name: "Sunday Volleyball", StandardCost: decimal.NewFromInt(100)})
	store.AddLeague(models.LeagueDue{LeagueID: 2, Name: "Tuesday Dodgeball", StandardCost: decimal.NewFromInt(50)})
	store.AddLeague(models.LeagueDue{LeagueID: 3, Name: "Unreferenced League", StandardCost: decimal.NewFromInt(75)})

	store.AddMembership(42, models.TeamMembership{TeamID: 7, TeamName: "Net Gains", LeagueID: 2, UserIsOnRoster: true})
	store.AddMembership(99, models.TeamMembership{TeamID: 8, TeamName: "Spiked Punch", LeagueID: 1, UserIsOnRoster: true})

	store.AddLedgerEntry(models.LedgerEntry{ID: 11, UserID: 42, LeagueID: 1, AmountDue: decimal.NewFromInt(100), Status: models.StatusPending})
	store.AddLedgerEntry(models.LedgerEntry{ID: 12, UserID: 99, LeagueID: 1, AmountDue: decimal.NewFromInt(100), Status: models.StatusPaid})
	return store
}

func TestLedgerEntriesByUser(t *testing.T) {
	store := seededStore()

	entries, err := store.LedgerEntriesByUser(context.Background(), 42)

	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, int64(11), entries[0].ID)
}

func TestMembershipsByUser(t *testing.T) {
	store := seededStore()

	memberships, err := store.MembershipsByUser(context.Background(), 42)

	require.NoError(t, err)
	require.Len(t, memberships, 1)
	assert.Equal(t, int64(7), memberships[0].TeamID)

	// Mutating the returned slice must not touch internal state.
	memberships[0].TeamName = "changed"
	again, err := store.MembershipsByUser(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, "Net Gains", again[0].TeamName)
}

func TestLeaguesByUser(t *testing.T) {
	store := seededStore()

	t.Run("only referenced leagues are returned", func(t *testing.T) {
		leagues, err := store.LeaguesByUser(context.Background(), 42)

		require.NoError(t, err)
		// League 1 via ledger entry, league 2 via membership; league 3 untouched.
		assert.Len(t, leagues, 2)
		assert.Contains(t, leagues, int64(1))
		assert.Contains(t, leagues, int64(2))
	})

	t.Run("unknown user gets an empty map", func(t *testing.T) {
		leagues, err := store.LeaguesByUser(context.Background(), 12345)

		require.NoError(t, err)
		assert.Empty(t, leagues)
	})
}
