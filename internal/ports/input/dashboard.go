package input

import (
	"context"

	"venuehub/internal/domain/entities"
)

// Dashboard is the home page composition.
type Dashboard struct {
	RecentThreads   []entities.Thread
	UpcomingMatches []entities.Match
	Venues          []entities.Venue
	Groups          []entities.Group
}

type DashboardUseCase interface {
	Home(ctx context.Context) (*Dashboard, error)
}
