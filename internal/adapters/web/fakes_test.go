package web

import (
	"context"
	"time"

	"github.com/google/uuid"

	"venuehub/internal/domain"
	"venuehub/internal/domain/entities"
	"venuehub/internal/ports/input"
)

type fakeVenues struct {
	venues []entities.Venue
	err    error
}

func (f *fakeVenues) ListVenues(ctx context.Context) ([]entities.Venue, error) {
	return f.venues, f.err
}

func (f *fakeVenues) GetVenue(ctx context.Context, id uint) (*entities.Venue, error) {
	for i := range f.venues {
		if f.venues[i].ID == id {
			return &f.venues[i], nil
		}
	}
	return nil, domain.ErrVenueNotFound
}

type fakeBookings struct {
	createErr    error
	lastUser     entities.User
	lastForm     domain.BookingForm
	byID         map[uint]*entities.Booking
	list         []entities.Booking
	cancelCalls  int
	cancelResult bool
	cancelErr    error
}

func (f *fakeBookings) CreateBooking(ctx context.Context, user entities.User, venueID uint, form domain.BookingForm) (*entities.Booking, error) {
	f.lastUser, f.lastForm = user, form
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &entities.Booking{
		ID:      7,
		UserID:  user.ID,
		VenueID: venueID,
		Status:  domain.StatusPending,
		Venue:   &entities.Venue{ID: venueID, Name: "Camp Nou"},
	}, nil
}

func (f *fakeBookings) GetBooking(ctx context.Context, id uint) (*entities.Booking, error) {
	if b, ok := f.byID[id]; ok {
		return b, nil
	}
	return nil, domain.ErrBookingNotFound
}

func (f *fakeBookings) ListUserBookings(ctx context.Context, userID string) ([]entities.Booking, error) {
	return f.list, nil
}

func (f *fakeBookings) CancelBooking(ctx context.Context, bookingID uint, userID string) (bool, error) {
	f.cancelCalls++
	return f.cancelResult, f.cancelErr
}

type fakeDashboard struct {
	d   *input.Dashboard
	err error
}

func (f *fakeDashboard) Home(ctx context.Context) (*input.Dashboard, error) {
	return f.d, f.err
}

type fakeChat struct {
	groups   []entities.Group
	messages []entities.Message
	err      error
}

func (f *fakeChat) ListGroups(ctx context.Context) ([]entities.Group, error) {
	return f.groups, f.err
}

func (f *fakeChat) GetGroup(ctx context.Context, id uuid.UUID) (*entities.Group, error) {
	for i := range f.groups {
		if f.groups[i].ID == id {
			return &f.groups[i], nil
		}
	}
	return nil, domain.ErrGroupNotFound
}

func (f *fakeChat) CreateGroup(ctx context.Context, owner entities.User, name, description string) (*entities.Group, error) {
	if name == "" {
		return nil, domain.ErrInvalidGroup
	}
	g := entities.Group{ID: uuid.New(), Name: name, Description: description, OwnerID: owner.ID, CreatedAt: time.Now()}
	f.groups = append(f.groups, g)
	return &g, nil
}

func (f *fakeChat) UpdateGroup(ctx context.Context, owner entities.User, id uuid.UUID, name, description string) (*entities.Group, error) {
	g, err := f.GetGroup(ctx, id)
	if err != nil {
		return nil, err
	}
	if g.OwnerID != owner.ID {
		return nil, domain.ErrNotGroupOwner
	}
	g.Name, g.Description = name, description
	return g, nil
}

func (f *fakeChat) DeleteGroup(ctx context.Context, owner entities.User, id uuid.UUID) error {
	g, err := f.GetGroup(ctx, id)
	if err != nil {
		return err
	}
	if g.OwnerID != owner.ID {
		return domain.ErrNotGroupOwner
	}
	return nil
}

func (f *fakeChat) ListMessages(ctx context.Context, groupID uuid.UUID) ([]entities.Message, error) {
	if _, err := f.GetGroup(ctx, groupID); err != nil {
		return nil, err
	}
	return f.messages, nil
}

func (f *fakeChat) PostMessage(ctx context.Context, user entities.User, groupID uuid.UUID, content string) (*entities.Message, error) {
	if _, err := f.GetGroup(ctx, groupID); err != nil {
		return nil, err
	}
	if content == "" {
		return nil, domain.ErrInvalidMessage
	}
	m := entities.Message{ID: uint(len(f.messages) + 1), GroupID: groupID, UserID: user.ID, Username: user.DisplayName(), Content: content}
	f.messages = append(f.messages, m)
	return &m, nil
}
