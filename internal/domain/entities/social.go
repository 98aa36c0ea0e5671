package entities

import (
	"time"

	"github.com/google/uuid"
)

// Thread is a social feed post.
type Thread struct {
	ID        uuid.UUID
	Author    string
	Title     string
	Content   string
	CreatedAt time.Time
}

// Match is a listed fixture. EventDate is zero when not scheduled yet.
type Match struct {
	ID        uuid.UUID
	Title     string
	HomeTeam  string
	AwayTeam  string
	VenueName string
	EventDate time.Time
	CreatedAt time.Time
}

// HasDate reports whether the match is scheduled.
func (m *Match) HasDate() bool {
	return !m.EventDate.IsZero()
}
