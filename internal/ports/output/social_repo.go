package output

import (
	"context"

	"venuehub/internal/domain/entities"
)

type ThreadRepository interface {
	// ListRecent returns up to limit threads, newest first.
	ListRecent(ctx context.Context, limit int) ([]entities.Thread, error)
}

type MatchRepository interface {
	// ListUpcoming returns up to limit matches that have an event date, soonest first.
	ListUpcoming(ctx context.Context, limit int) ([]entities.Match, error)
}
