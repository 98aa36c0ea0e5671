package application

import (
	"context"
	"errors"
	"slices"
	"sync"

	"github.com/google/uuid"

	"venuehub/internal/domain"
	"venuehub/internal/domain/entities"
	"venuehub/internal/ports/output"
)

var errStore = errors.New("store unavailable")

type fakeVenueRepo struct {
	mu      sync.Mutex
	venues  []entities.Venue
	nextID  uint
	inserts int
	err     error
}

func (r *fakeVenueRepo) Count(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.venues)), r.err
}

func (r *fakeVenueRepo) List(ctx context.Context) ([]entities.Venue, error) {
	return r.ListFirst(ctx, 0)
}

func (r *fakeVenueRepo) ListFirst(ctx context.Context, limit int) ([]entities.Venue, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	out := slices.Clone(r.venues)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeVenueRepo) FindByID(ctx context.Context, id uint) (*entities.Venue, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	for i := range r.venues {
		if r.venues[i].ID == id {
			v := r.venues[i]
			return &v, nil
		}
	}
	return nil, domain.ErrVenueNotFound
}

func (r *fakeVenueRepo) GetOrCreateByName(ctx context.Context, venue *entities.Venue) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return false, r.err
	}
	for _, v := range r.venues {
		if v.Name == venue.Name {
			*venue = v
			return false, nil
		}
	}
	r.nextID++
	venue.ID = r.nextID
	r.venues = append(r.venues, *venue)
	r.inserts++
	return true, nil
}

type fakeBookingRepo struct {
	mu        sync.Mutex
	bookings  []entities.Booking
	nextID    uint
	createErr error
	deleted   []uint
}

func (r *fakeBookingRepo) Create(ctx context.Context, b *entities.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	r.nextID++
	b.ID = r.nextID
	r.bookings = append(r.bookings, *b)
	return nil
}

func (r *fakeBookingRepo) CreateExclusive(ctx context.Context, b *entities.Booking) error {
	r.mu.Lock()
	for _, x := range r.bookings {
		if x.VenueID == b.VenueID && x.Date.Equal(b.Date) && x.Time == b.Time && x.Status != domain.StatusCancelled {
			r.mu.Unlock()
			return domain.ErrSlotTaken
		}
	}
	r.mu.Unlock()
	return r.Create(ctx, b)
}

func (r *fakeBookingRepo) FindByID(ctx context.Context, id uint) (*entities.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.bookings {
		if r.bookings[i].ID == id {
			b := r.bookings[i]
			return &b, nil
		}
	}
	return nil, domain.ErrBookingNotFound
}

// FindByUserID deliberately returns rows in insertion order.
func (r *fakeBookingRepo) FindByUserID(ctx context.Context, userID string) ([]entities.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entities.Booking
	for _, b := range r.bookings {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) Delete(ctx context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bookings = slices.DeleteFunc(r.bookings, func(b entities.Booking) bool { return b.ID == id })
	r.deleted = append(r.deleted, id)
	return nil
}

type fakeSource struct {
	rows  []output.StadiumRow
	err   error
	calls int
}

func (s *fakeSource) Rows(ctx context.Context) ([]output.StadiumRow, error) {
	s.calls++
	return s.rows, s.err
}

type fakeNotifier struct {
	events []output.BookingEvent
	err    error
}

func (n *fakeNotifier) Notify(ctx context.Context, e output.BookingEvent) error {
	n.events = append(n.events, e)
	return n.err
}

type fakeThreadRepo struct {
	threads []entities.Thread
	limit   int
	err     error
}

func (r *fakeThreadRepo) ListRecent(ctx context.Context, limit int) ([]entities.Thread, error) {
	r.limit = limit
	if len(r.threads) > limit {
		return r.threads[:limit], r.err
	}
	return r.threads, r.err
}

type fakeMatchRepo struct {
	matches []entities.Match
	limit   int
	err     error
}

func (r *fakeMatchRepo) ListUpcoming(ctx context.Context, limit int) ([]entities.Match, error) {
	r.limit = limit
	if len(r.matches) > limit {
		return r.matches[:limit], r.err
	}
	return r.matches, r.err
}

type fakeGroupRepo struct {
	groups []entities.Group
	err    error
}

func (r *fakeGroupRepo) List(ctx context.Context, limit int) ([]entities.Group, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := slices.Clone(r.groups)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeGroupRepo) FindByID(ctx context.Context, id uuid.UUID) (*entities.Group, error) {
	for i := range r.groups {
		if r.groups[i].ID == id {
			g := r.groups[i]
			return &g, nil
		}
	}
	return nil, domain.ErrGroupNotFound
}

func (r *fakeGroupRepo) Create(ctx context.Context, g *entities.Group) error {
	r.groups = append(r.groups, *g)
	return nil
}

func (r *fakeGroupRepo) Update(ctx context.Context, g *entities.Group) error {
	for i := range r.groups {
		if r.groups[i].ID == g.ID {
			r.groups[i] = *g
			return nil
		}
	}
	return domain.ErrGroupNotFound
}

func (r *fakeGroupRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.groups = slices.DeleteFunc(r.groups, func(g entities.Group) bool { return g.ID == id })
	return nil
}

type fakeMessageRepo struct {
	messages []entities.Message
	limit    int
}

func (r *fakeMessageRepo) ListByGroupID(ctx context.Context, groupID uuid.UUID, limit int) ([]entities.Message, error) {
	r.limit = limit
	var out []entities.Message
	for _, m := range r.messages {
		if m.GroupID == groupID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *fakeMessageRepo) Create(ctx context.Context, m *entities.Message) error {
	m.ID = uint(len(r.messages) + 1)
	r.messages = append(r.messages, *m)
	return nil
}
