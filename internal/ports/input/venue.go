package input

import (
	"context"

	"venuehub/internal/domain/entities"
)

type VenueUseCase interface {
	ListVenues(ctx context.Context) ([]entities.Venue, error)
	GetVenue(ctx context.Context, id uint) (*entities.Venue, error)
}
