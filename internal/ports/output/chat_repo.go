package output

import (
	"context"

	"github.com/google/uuid"

	"venuehub/internal/domain/entities"
)

type GroupRepository interface {
	// List returns groups in creation order; limit <= 0 means all.
	List(ctx context.Context, limit int) ([]entities.Group, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entities.Group, error)
	Create(ctx context.Context, group *entities.Group) error
	Update(ctx context.Context, group *entities.Group) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type MessageRepository interface {
	// ListByGroupID returns the last limit messages of a group, oldest first.
	ListByGroupID(ctx context.Context, groupID uuid.UUID, limit int) ([]entities.Message, error)
	Create(ctx context.Context, message *entities.Message) error
}
