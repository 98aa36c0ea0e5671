package output

import (
	"context"

	"venuehub/internal/domain/entities"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *entities.Booking) error
	// CreateExclusive inserts booking unless a non-cancelled booking holds the
	// same venue, date and time, in which case it returns domain.ErrSlotTaken.
	CreateExclusive(ctx context.Context, booking *entities.Booking) error
	FindByID(ctx context.Context, id uint) (*entities.Booking, error)
	// FindByUserID returns the user's bookings with Venue set.
	FindByUserID(ctx context.Context, userID string) ([]entities.Booking, error)
	Delete(ctx context.Context, id uint) error
}
