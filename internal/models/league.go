package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// LeagueDue is the pricing configuration for a single league.
// EarlyBirdCost only applies when EarlyBirdDeadline is also configured;
// a league with a zero StandardCost is free and never owes anything.
type LeagueDue struct {
	LeagueID          int64            `json:"league_id"`
	Name              string           `json:"name"`
	StandardCost      decimal.Decimal  `json:"standard_cost"`
	EarlyBirdCost     *decimal.Decimal `json:"early_bird_cost,omitempty"`
	EarlyBirdDeadline *time.Time       `json:"early_bird_deadline,omitempty"`
	PaymentDueDate    *time.Time       `json:"payment_due_date,omitempty"`
}
