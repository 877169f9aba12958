package models

// TeamMembership links a user to a team within a league. A team belongs to
// exactly one league; a user may appear on any number of rosters.
type TeamMembership struct {
	TeamID         int64  `json:"team_id"`
	TeamName       string `json:"team_name"`
	LeagueID       int64  `json:"league_id"`
	UserIsOnRoster bool   `json:"user_is_on_roster"`
}
