package application

import (
	"context"
	"errors"
	"fmt"

	"venuehub/internal/domain"
	"venuehub/internal/domain/entities"
	"venuehub/internal/ports/input"
	"venuehub/internal/ports/output"
)

var (
	_ input.VenueUseCase     = (*VenueService)(nil)
	_ input.BookingUseCase   = (*BookingService)(nil)
	_ input.DashboardUseCase = (*DashboardService)(nil)
	_ input.ChatUseCase      = (*ChatService)(nil)
)

type VenueService struct {
	venueRepo output.VenueRepository
}

func NewVenueService(venueRepo output.VenueRepository) *VenueService {
	return &VenueService{venueRepo: venueRepo}
}

// ListVenues is a pure read; seeding happens in SeedService.
func (s *VenueService) ListVenues(ctx context.Context) ([]entities.Venue, error) {
	return s.venueRepo.List(ctx)
}

func (s *VenueService) GetVenue(ctx context.Context, id uint) (*entities.Venue, error) {
	venue, err := s.venueRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrVenueNotFound) {
			return nil, domain.ErrVenueNotFound
		}
		return nil, fmt.Errorf("find venue: %w", err)
	}
	return venue, nil
}
