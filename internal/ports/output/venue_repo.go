package output

import (
	"context"

	"venuehub/internal/domain/entities"
)

type VenueRepository interface {
	Count(ctx context.Context) (int64, error)
	List(ctx context.Context) ([]entities.Venue, error)
	ListFirst(ctx context.Context, limit int) ([]entities.Venue, error)
	FindByID(ctx context.Context, id uint) (*entities.Venue, error)
	// GetOrCreateByName inserts venue unless a venue with the same name
	// exists. venue is filled with the stored row either way.
	GetOrCreateByName(ctx context.Context, venue *entities.Venue) (bool, error)
}
