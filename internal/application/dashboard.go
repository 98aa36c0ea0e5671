package application

import (
	"context"
	"fmt"

	"venuehub/internal/domain"
	"venuehub/internal/ports/input"
	"venuehub/internal/ports/output"
)

type DashboardService struct {
	threadRepo output.ThreadRepository
	matchRepo  output.MatchRepository
	venueRepo  output.VenueRepository
	groupRepo  output.GroupRepository
}

func NewDashboardService(
	threadRepo output.ThreadRepository,
	matchRepo output.MatchRepository,
	venueRepo output.VenueRepository,
	groupRepo output.GroupRepository,
) *DashboardService {
	return &DashboardService{
		threadRepo: threadRepo,
		matchRepo:  matchRepo,
		venueRepo:  venueRepo,
		groupRepo:  groupRepo,
	}
}

// Home reads the bounded slices shown on the home page. Any failing store
// fails the whole page.
func (s *DashboardService) Home(ctx context.Context) (*input.Dashboard, error) {
	threads, err := s.threadRepo.ListRecent(ctx, domain.DashboardThreads)
	if err != nil {
		return nil, fmt.Errorf("recent threads: %w", err)
	}
	matches, err := s.matchRepo.ListUpcoming(ctx, domain.DashboardMatches)
	if err != nil {
		return nil, fmt.Errorf("upcoming matches: %w", err)
	}
	venues, err := s.venueRepo.ListFirst(ctx, domain.DashboardVenues)
	if err != nil {
		return nil, fmt.Errorf("venues: %w", err)
	}
	groups, err := s.groupRepo.List(ctx, domain.DashboardGroups)
	if err != nil {
		return nil, fmt.Errorf("groups: %w", err)
	}
	return &input.Dashboard{
		RecentThreads:   threads,
		UpcomingMatches: matches,
		Venues:          venues,
		Groups:          groups,
	}, nil
}
