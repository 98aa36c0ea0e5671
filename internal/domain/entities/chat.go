package entities

import (
	"time"

	"github.com/google/uuid"
)

// Group is a live chat room.
type Group struct {
	ID          uuid.UUID
	Name        string
	Description string
	OwnerID     string
	CreatedAt   time.Time
}

// Message is a chat message posted in a group.
type Message struct {
	ID        uint
	GroupID   uuid.UUID
	UserID    string
	Username  string
	Content   string
	CreatedAt time.Time
}
