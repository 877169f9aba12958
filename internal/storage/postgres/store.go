package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/shopspring/decimal"

	"github.com/leaguedesk/league-dues/internal/interfaces"
	"github.com/leaguedesk/league-dues/internal/models"
)

type PostgresRegistrationStore struct {
	db *sql.DB
}

func NewPostgresRegistrationStore(db *sql.DB) *PostgresRegistrationStore {
	return &PostgresRegistrationStore{
		db: db,
	}
}

func (p *PostgresRegistrationStore) LedgerEntriesByUser(ctx context.Context, userID int64) ([]models.LedgerEntry, error) {
	const query = `SELECT id, user_id, team_id, league_id, amount_due, amount_paid, status, due_date, payment_method
	FROM ledger_entries
	WHERE user_id = $1
	ORDER BY id`

	rows, err := p.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.LedgerEntry
	for rows.Next() {
		var (
			entry   models.LedgerEntry
			teamID  sql.NullInt64
			dueDate sql.NullTime
			method  sql.NullString
		)
		err := rows.Scan(
			&entry.ID,
			&entry.UserID,
			&teamID,
			&entry.LeagueID,
			&entry.AmountDue,
			&entry.AmountPaid,
			&entry.Status,
			&dueDate,
			&method,
		)
		if err != nil {
			return nil, err
		}
		if teamID.Valid {
			entry.TeamID = &teamID.Int64
		}
		if dueDate.Valid {
			entry.DueDate = &dueDate.Time
		}
		if method.Valid {
			pm := models.PaymentMethod(method.String)
			entry.PaymentMethod = &pm
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

func (p *PostgresRegistrationStore) MembershipsByUser(ctx context.Context, userID int64) ([]models.TeamMembership, error) {
	const query = `SELECT t.id, t.name, t.league_id
	FROM teams t
	JOIN team_rosters r ON r.team_id = t.id
	WHERE r.user_id = $1
	ORDER BY t.id`

	rows, err := p.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var memberships []models.TeamMembership
	for rows.Next() {
		var m models.TeamMembership
		if err := rows.Scan(&m.TeamID, &m.TeamName, &m.LeagueID); err != nil {
			return nil, err
		}
		// The roster join only returns teams the user is actually on.
		m.UserIsOnRoster = true
		memberships = append(memberships, m)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return memberships, nil
}

func (p *PostgresRegistrationStore) LeaguesByUser(ctx context.Context, userID int64) (map[int64]models.LeagueDue, error) {
	const query = `SELECT l.id, l.name, l.standard_cost, l.early_bird_cost, l.early_bird_deadline, l.payment_due_date
	FROM leagues l
	WHERE l.id IN (
		SELECT league_id FROM ledger_entries WHERE user_id = $1
		UNION
		SELECT t.league_id FROM teams t JOIN team_rosters r ON r.team_id = t.id WHERE r.user_id = $1
	)`

	rows, err := p.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	leagues := make(map[int64]models.LeagueDue)
	for rows.Next() {
		var (
			league        models.LeagueDue
			earlyBirdCost decimal.NullDecimal
			deadline      sql.NullTime
			paymentDue    sql.NullTime
		)
		err := rows.Scan(
			&league.LeagueID,
			&league.Name,
			&league.StandardCost,
			&earlyBirdCost,
			&deadline,
			&paymentDue,
		)
		if err != nil {
			return nil, err
		}
		if earlyBirdCost.Valid {
			league.EarlyBirdCost = &earlyBirdCost.Decimal
		}
		if deadline.Valid {
			d := deadline.Time
			league.EarlyBirdDeadline = &d
		}
		if paymentDue.Valid {
			d := paymentDue.Time
			league.PaymentDueDate = &d
		}
		leagues[league.LeagueID] = league
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return leagues, nil
}

// Ping verifies the connection with a short deadline before the server starts
// taking traffic.
func (p *PostgresRegistrationStore) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return p.db.PingContext(ctx)
}

var _ interfaces.RegistrationStore = (*PostgresRegistrationStore)(nil)
