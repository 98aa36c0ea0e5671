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

var _ output.VenueRepository = (*VenueRepository)(nil)

const venueColumns = `id, name, location, sport_type, capacity, description, price_per_hour, created_at`

type VenueRepository struct {
	db DB
}

func NewVenueRepository(db DB) *VenueRepository {
	return &VenueRepository{db: db}
}

func scanVenue(row pgx.Row) (entities.Venue, error) {
	var (
		v         entities.Venue
		id        int64
		capacity  int32
		price     pgtype.Numeric
		createdAt pgtype.Timestamptz
	)
	if err := row.Scan(&id, &v.Name, &v.Location, &v.SportType, &capacity, &v.Description, &price, &createdAt); err != nil {
		return entities.Venue{}, err
	}
	v.ID = uint(id)
	v.Capacity = int(capacity)
	v.PricePerHour = pgtypeNumericToFloat(price)
	v.CreatedAt = pgtypeTimestamptzToTime(createdAt)
	return v, nil
}

func (r *VenueRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM venues`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count venues: %w", err)
	}
	return n, nil
}

func (r *VenueRepository) List(ctx context.Context) ([]entities.Venue, error) {
	return r.ListFirst(ctx, 0)
}

func (r *VenueRepository) ListFirst(ctx context.Context, limit int) ([]entities.Venue, error) {
	query := `SELECT ` + venueColumns + ` FROM venues ORDER BY id`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT $1`
		args = append(args, limit)
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list venues: %w", err)
	}
	defer rows.Close()

	out := []entities.Venue{}
	for rows.Next() {
		v, err := scanVenue(rows)
		if err != nil {
			return nil, fmt.Errorf("scan venue: %w", err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list venues: %w", err)
	}
	return out, nil
}

func (r *VenueRepository) FindByID(ctx context.Context, id uint) (*entities.Venue, error) {
	v, err := scanVenue(r.db.QueryRow(ctx, `SELECT `+venueColumns+` FROM venues WHERE id = $1`, int64(id)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrVenueNotFound
		}
		return nil, fmt.Errorf("get venue by id: %w", err)
	}
	return &v, nil
}

func (r *VenueRepository) findByName(ctx context.Context, name string) (*entities.Venue, error) {
	v, err := scanVenue(r.db.QueryRow(ctx, `SELECT `+venueColumns+` FROM venues WHERE name = $1`, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrVenueNotFound
		}
		return nil, fmt.Errorf("get venue by name: %w", err)
	}
	return &v, nil
}

// GetOrCreateByName relies on the unique name index, so concurrent seeders
// insert each stadium at most once.
func (r *VenueRepository) GetOrCreateByName(ctx context.Context, venue *entities.Venue) (bool, error) {
	var (
		id        int64
		createdAt pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, `
		INSERT INTO venues (name, location, sport_type, capacity, description, price_per_hour)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (name) DO NOTHING
		RETURNING id, created_at`,
		venue.Name, venue.Location, venue.SportType, int32(venue.Capacity), venue.Description, venue.PricePerHour,
	).Scan(&id, &createdAt)
	if err == nil {
		venue.ID = uint(id)
		venue.CreatedAt = pgtypeTimestamptzToTime(createdAt)
		return true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return false, fmt.Errorf("create venue: %w", err)
	}

	existing, err := r.findByName(ctx, venue.Name)
	if err != nil {
		return false, err
	}
	*venue = *existing
	return false, nil
}
