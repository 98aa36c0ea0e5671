package input

import (
	"context"

	"venuehub/internal/domain"
	"venuehub/internal/domain/entities"
)

type BookingUseCase interface {
	CreateBooking(ctx context.Context, user entities.User, venueID uint, form domain.BookingForm) (*entities.Booking, error)
	GetBooking(ctx context.Context, id uint) (*entities.Booking, error)
	ListUserBookings(ctx context.Context, userID string) ([]entities.Booking, error)
	CancelBooking(ctx context.Context, bookingID uint, userID string) (bool, error)
}
