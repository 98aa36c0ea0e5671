package application

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"venuehub/internal/domain"
	"venuehub/internal/domain/entities"
	"venuehub/internal/ports/output"
	"venuehub/pkg/tz"
)

// BookingOptions tunes BookingService.
type BookingOptions struct {
	// Exclusive rejects a booking when the venue is already held for the
	// same date and time. Off by default: any number of bookings may share a slot.
	Exclusive bool
	Location  *time.Location
	Now       func() time.Time
}

type BookingService struct {
	bookingRepo output.BookingRepository
	venueRepo   output.VenueRepository
	notifier    output.BookingNotifier
	exclusive   bool
	loc         *time.Location
	now         func() time.Time
}

func NewBookingService(
	bookingRepo output.BookingRepository,
	venueRepo output.VenueRepository,
	notifier output.BookingNotifier,
	opts BookingOptions,
) *BookingService {
	s := &BookingService{
		bookingRepo: bookingRepo,
		venueRepo:   venueRepo,
		notifier:    notifier,
		exclusive:   opts.Exclusive,
		loc:         opts.Location,
		now:         opts.Now,
	}
	if s.loc == nil {
		s.loc = tz.Jakarta
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

// CreateBooking validates form and stores a pending booking of venueID for user.
// Validation failures are returned as domain.ValidationErrors.
func (s *BookingService) CreateBooking(ctx context.Context, user entities.User, venueID uint, form domain.BookingForm) (*entities.Booking, error) {
	venue, err := s.venueRepo.FindByID(ctx, venueID)
	if err != nil {
		if errors.Is(err, domain.ErrVenueNotFound) {
			return nil, domain.ErrVenueNotFound
		}
		return nil, fmt.Errorf("find venue: %w", err)
	}

	req, err := domain.ParseBookingForm(form, s.now(), s.loc)
	if err != nil {
		return nil, err
	}

	booking := &entities.Booking{
		UserID:   user.ID,
		Username: user.DisplayName(),
		VenueID:  venue.ID,
		Date:     req.Date,
		Time:     req.Time,
		Status:   domain.StatusPending,
	}
	if s.exclusive {
		err = s.bookingRepo.CreateExclusive(ctx, booking)
	} else {
		err = s.bookingRepo.Create(ctx, booking)
	}
	if err != nil {
		if errors.Is(err, domain.ErrSlotTaken) {
			return nil, domain.ErrSlotTaken
		}
		return nil, fmt.Errorf("create booking: %w", err)
	}
	booking.Venue = venue

	s.notify(ctx, output.BookingEvent{Kind: output.BookingCreated, Booking: *booking, Venue: venue})
	return booking, nil
}

func (s *BookingService) GetBooking(ctx context.Context, id uint) (*entities.Booking, error) {
	booking, err := s.bookingRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrBookingNotFound) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("find booking: %w", err)
	}
	return booking, nil
}

// ListUserBookings returns userID's bookings, latest date and time first.
func (s *BookingService) ListUserBookings(ctx context.Context, userID string) ([]entities.Booking, error) {
	bookings, err := s.bookingRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	owned := bookings[:0]
	for _, b := range bookings {
		if b.IsOwnedBy(userID) {
			owned = append(owned, b)
		}
	}
	entities.SortNewestFirst(owned)
	return owned, nil
}

// CancelBooking deletes the booking when userID owns it. A missing booking or
// one owned by someone else is left alone and reported as (false, nil).
func (s *BookingService) CancelBooking(ctx context.Context, bookingID uint, userID string) (bool, error) {
	booking, err := s.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, domain.ErrBookingNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("find booking: %w", err)
	}
	if !booking.IsOwnedBy(userID) {
		return false, nil
	}
	if err := s.bookingRepo.Delete(ctx, booking.ID); err != nil {
		return false, fmt.Errorf("delete booking: %w", err)
	}
	booking.Status = domain.StatusCancelled

	s.notify(ctx, output.BookingEvent{Kind: output.BookingCancelled, Booking: *booking, Venue: booking.Venue})
	return true, nil
}

func (s *BookingService) notify(ctx context.Context, event output.BookingEvent) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.Notify(ctx, event); err != nil {
		log.Printf("⚠️ Notification %s (booking=%d): %v", event.Kind, event.Booking.ID, err)
	}
}
