package input

import (
	"context"

	"github.com/google/uuid"

	"venuehub/internal/domain/entities"
)

type ChatUseCase interface {
	ListGroups(ctx context.Context) ([]entities.Group, error)
	GetGroup(ctx context.Context, id uuid.UUID) (*entities.Group, error)
	CreateGroup(ctx context.Context, owner entities.User, name, description string) (*entities.Group, error)
	UpdateGroup(ctx context.Context, owner entities.User, id uuid.UUID, name, description string) (*entities.Group, error)
	DeleteGroup(ctx context.Context, owner entities.User, id uuid.UUID) error
	ListMessages(ctx context.Context, groupID uuid.UUID) ([]entities.Message, error)
	PostMessage(ctx context.Context, user entities.User, groupID uuid.UUID, content string) (*entities.Message, error)
}
