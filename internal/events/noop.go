package events

import (
	"context"

	"github.com/leaguedesk/league-dues/internal/interfaces"
)

// NoopPublisher drops every event. Used when no broker is configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(ctx context.Context, event any) error {
	return nil
}

var _ interfaces.EventPublisher = NoopPublisher{}
