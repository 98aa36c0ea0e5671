package entities

import (
	"cmp"
	"slices"
	"time"

	"venuehub/pkg/slot"
)

// Booking is a user's reservation of a venue for one date and time.
type Booking struct {
	ID        uint
	UserID    string
	Username  string
	VenueID   uint
	Date      time.Time // civil date, time part is zero
	Time      slot.Clock
	Status    string
	CreatedAt time.Time

	// Venue is filled by listings that join the venue row.
	Venue *Venue
}

// IsOwnedBy reports whether userID made the booking.
func (b *Booking) IsOwnedBy(userID string) bool {
	return userID != "" && b.UserID == userID
}

// Slot renders the booked date and time.
func (b *Booking) Slot() string {
	return slot.Format(b.Date, b.Time)
}

// SortNewestFirst orders bookings by date, then time, then id, all descending.
func SortNewestFirst(bookings []Booking) {
	slices.SortStableFunc(bookings, func(a, b Booking) int {
		if c := b.Date.Compare(a.Date); c != 0 {
			return c
		}
		if c := cmp.Compare(b.Time, a.Time); c != 0 {
			return c
		}
		return cmp.Compare(b.ID, a.ID)
	})
}
