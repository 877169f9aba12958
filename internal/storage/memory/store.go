package memory

import (
	"context"
	"sync"

	"github.com/leaguedesk/league-dues/internal/interfaces"
	"github.com/leaguedesk/league-dues/internal/models"
)

// MemoryRegistrationStore is an in-memory implementation of
// interfaces.RegistrationStore, used in dev mode and tests. It is safe for
// concurrent use.
type MemoryRegistrationStore struct {
	mu          sync.Mutex
	entries     []models.LedgerEntry
	memberships map[int64][]models.TeamMembership // keyed by user id
	leagues     map[int64]models.LeagueDue
}

// NewMemoryRegistrationStore creates an empty store.
func NewMemoryRegistrationStore() *MemoryRegistrationStore {
	return &MemoryRegistrationStore{
		memberships: make(map[int64][]models.TeamMembership),
		leagues:     make(map[int64]models.LeagueDue),
	}
}

// AddLeague registers pricing config for a league.
func (m *MemoryRegistrationStore) AddLeague(league models.LeagueDue) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.leagues[league.LeagueID] = league
}

// AddMembership records that a user appears on a team.
func (m *MemoryRegistrationStore) AddMembership(userID int64, membership models.TeamMembership) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.memberships[userID] = append(m.memberships[userID], membership)
}

// AddLedgerEntry records a billed registration.
func (m *MemoryRegistrationStore) AddLedgerEntry(entry models.LedgerEntry) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, entry)
}

func (m *MemoryRegistrationStore) LedgerEntriesByUser(ctx context.Context, userID int64) ([]models.LedgerEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var result []models.LedgerEntry
	for _, e := range m.entries {
		if e.UserID == userID {
			result = append(result, e)
		}
	}
	return result, nil
}

func (m *MemoryRegistrationStore) MembershipsByUser(ctx context.Context, userID int64) ([]models.TeamMembership, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	// Return a copy so callers can't mutate internal state.
	memberships := m.memberships[userID]
	copied := make([]models.TeamMembership, len(memberships))
	copy(copied, memberships)
	return copied, nil
}

// LeaguesByUser returns pricing for every league the user's entries or
// memberships reference, mirroring what the SQL store's join produces.
func (m *MemoryRegistrationStore) LeaguesByUser(ctx context.Context, userID int64) (map[int64]models.LeagueDue, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	referenced := make(map[int64]bool)
	for _, e := range m.entries {
		if e.UserID == userID {
			referenced[e.LeagueID] = true
		}
	}
	for _, tm := range m.memberships[userID] {
		referenced[tm.LeagueID] = true
	}

	result := make(map[int64]models.LeagueDue, len(referenced))
	for leagueID := range referenced {
		if league, ok := m.leagues[leagueID]; ok {
			result[leagueID] = league
		}
	}
	return result, nil
}

var _ interfaces.RegistrationStore = (*MemoryRegistrationStore)(nil)
