package database

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"venuehub/internal/domain/entities"
	"venuehub/internal/ports/output"
)

var (
	_ output.ThreadRepository = (*ThreadRepository)(nil)
	_ output.MatchRepository  = (*MatchRepository)(nil)
)

type ThreadRepository struct {
	db DB
}

func NewThreadRepository(db DB) *ThreadRepository {
	return &ThreadRepository{db: db}
}

func (r *ThreadRepository) ListRecent(ctx context.Context, limit int) ([]entities.Thread, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, author, title, content, created_at
		FROM threads
		ORDER BY created_at DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent threads: %w", err)
	}
	defer rows.Close()

	out := []entities.Thread{}
	for rows.Next() {
		var (
			t         entities.Thread
			createdAt pgtype.Timestamptz
		)
		if err := rows.Scan(&t.ID, &t.Author, &t.Title, &t.Content, &createdAt); err != nil {
			return nil, fmt.Errorf("scan thread: %w", err)
		}
		t.CreatedAt = pgtypeTimestamptzToTime(createdAt)
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list recent threads: %w", err)
	}
	return out, nil
}

type MatchRepository struct {
	db DB
}

func NewMatchRepository(db DB) *MatchRepository {
	return &MatchRepository{db: db}
}

func (r *MatchRepository) ListUpcoming(ctx context.Context, limit int) ([]entities.Match, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, title, home_team, away_team, venue_name, event_date, created_at
		FROM matches
		WHERE event_date IS NOT NULL
		ORDER BY event_date
		LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("list upcoming matches: %w", err)
	}
	defer rows.Close()

	out := []entities.Match{}
	for rows.Next() {
		var (
			m                    entities.Match
			id                   uuid.UUID
			eventDate, createdAt pgtype.Timestamptz
		)
		if err := rows.Scan(&id, &m.Title, &m.HomeTeam, &m.AwayTeam, &m.VenueName, &eventDate, &createdAt); err != nil {
			return nil, fmt.Errorf("scan match: %w", err)
		}
		m.ID = id
		m.EventDate = pgtypeTimestamptzToTime(eventDate)
		m.CreatedAt = pgtypeTimestamptzToTime(createdAt)
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list upcoming matches: %w", err)
	}
	return out, nil
}
