package output

import (
	"context"

	"venuehub/internal/domain/entities"
)

// Booking event kinds, also used as routing keys.
const (
	BookingCreated   = "booking.created"
	BookingCancelled = "booking.cancelled"
)

// BookingEvent describes a booking state change. Venue may be nil.
type BookingEvent struct {
	Kind    string
	Booking entities.Booking
	Venue   *entities.Venue
}

// BookingNotifier publishes booking events to outside listeners.
type BookingNotifier interface {
	Notify(ctx context.Context, event BookingEvent) error
}
