package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"venuehub/internal/domain"
	"venuehub/internal/domain/entities"
	"venuehub/internal/ports/output"
)

var _ output.BookingRepository = (*BookingRepository)(nil)

type BookingRepository struct {
	db DB
}

func NewBookingRepository(db DB) *BookingRepository {
	return &BookingRepository{db: db}
}

const insertBooking = `
	INSERT INTO bookings (user_id, username, venue_id, booking_date, booking_time, status)
	VALUES ($1, $2, $3, $4, $5, $6)
	RETURNING id, created_at`

type rowQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func insertBookingRow(ctx context.Context, q rowQuerier, b *entities.Booking) error {
	if !domain.ValidStatus(b.Status) {
		return fmt.Errorf("unknown booking status %q", b.Status)
	}
	var (
		id        int64
		createdAt pgtype.Timestamptz
	)
	err := q.QueryRow(ctx, insertBooking,
		b.UserID, b.Username, int64(b.VenueID), timeToPgtypeDate(b.Date), clockToPgtypeTime(b.Time), b.Status,
	).Scan(&id, &createdAt)
	if err != nil {
		return err
	}
	b.ID = uint(id)
	b.CreatedAt = pgtypeTimestamptzToTime(createdAt)
	return nil
}

func (r *BookingRepository) Create(ctx context.Context, booking *entities.Booking) error {
	if err := insertBookingRow(ctx, r.db, booking); err != nil {
		return fmt.Errorf("create booking: %w", err)
	}
	return nil
}

// CreateExclusive serializes writers of one slot with a transaction-scoped
// advisory lock before checking for a live booking.
func (r *BookingRepository) CreateExclusive(ctx context.Context, booking *entities.Booking) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin booking tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	key := fmt.Sprintf("booking:%d:%s:%s", booking.VenueID, booking.Date.Format("2006-01-02"), booking.Time)
	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, key); err != nil {
		return fmt.Errorf("lock booking slot: %w", err)
	}

	var taken bool
	err = tx.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM bookings
			WHERE venue_id = $1 AND booking_date = $2 AND booking_time = $3 AND status <> $4
		)`,
		int64(booking.VenueID), timeToPgtypeDate(booking.Date), clockToPgtypeTime(booking.Time), domain.StatusCancelled,
	).Scan(&taken)
	if err != nil {
		return fmt.Errorf("check booking slot: %w", err)
	}
	if taken {
		return domain.ErrSlotTaken
	}

	if err := insertBookingRow(ctx, tx, booking); err != nil {
		return fmt.Errorf("create booking: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit booking: %w", err)
	}
	return nil
}

const bookingSelect = `
	SELECT b.id, b.user_id, b.username, b.venue_id, b.booking_date, b.booking_time, b.status, b.created_at,
	       v.id, v.name, v.location, v.sport_type, v.capacity, v.description, v.price_per_hour, v.created_at
	FROM bookings b
	JOIN venues v ON v.id = b.venue_id`

func scanBooking(row pgx.Row) (entities.Booking, error) {
	var (
		b                   entities.Booking
		v                   entities.Venue
		id, venueID, vID    int64
		date                pgtype.Date
		clock               pgtype.Time
		createdAt, vCreated pgtype.Timestamptz
		capacity            int32
		price               pgtype.Numeric
	)
	err := row.Scan(
		&id, &b.UserID, &b.Username, &venueID, &date, &clock, &b.Status, &createdAt,
		&vID, &v.Name, &v.Location, &v.SportType, &capacity, &v.Description, &price, &vCreated,
	)
	if err != nil {
		return entities.Booking{}, err
	}
	b.ID = uint(id)
	b.VenueID = uint(venueID)
	b.Date = pgtypeDateToTime(date)
	b.Time = pgtypeTimeToClock(clock)
	b.CreatedAt = pgtypeTimestamptzToTime(createdAt)
	v.ID = uint(vID)
	v.Capacity = int(capacity)
	v.PricePerHour = pgtypeNumericToFloat(price)
	v.CreatedAt = pgtypeTimestamptzToTime(vCreated)
	b.Venue = &v
	return b, nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id uint) (*entities.Booking, error) {
	b, err := scanBooking(r.db.QueryRow(ctx, bookingSelect+` WHERE b.id = $1`, int64(id)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("get booking by id: %w", err)
	}
	return &b, nil
}

func (r *BookingRepository) FindByUserID(ctx context.Context, userID string) ([]entities.Booking, error) {
	rows, err := r.db.Query(ctx,
		bookingSelect+` WHERE b.user_id = $1 ORDER BY b.booking_date DESC, b.booking_time DESC, b.id DESC`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("get bookings by user id: %w", err)
	}
	defer rows.Close()

	out := []entities.Booking{}
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get bookings by user id: %w", err)
	}
	return out, nil
}

func (r *BookingRepository) Delete(ctx context.Context, id uint) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM bookings WHERE id = $1`, int64(id)); err != nil {
		return fmt.Errorf("delete booking: %w", err)
	}
	return nil
}
