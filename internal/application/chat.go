package application

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"venuehub/internal/domain"
	"venuehub/internal/domain/entities"
	"venuehub/internal/ports/output"
)

const (
	maxGroupNameLen   = 100
	maxMessageLen     = 2000
	chatHistoryLength = 50
)

type ChatService struct {
	groupRepo   output.GroupRepository
	messageRepo output.MessageRepository
}

func NewChatService(groupRepo output.GroupRepository, messageRepo output.MessageRepository) *ChatService {
	return &ChatService{groupRepo: groupRepo, messageRepo: messageRepo}
}

func (s *ChatService) ListGroups(ctx context.Context) ([]entities.Group, error) {
	return s.groupRepo.List(ctx, 0)
}

func (s *ChatService) GetGroup(ctx context.Context, id uuid.UUID) (*entities.Group, error) {
	group, err := s.groupRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrGroupNotFound) {
			return nil, domain.ErrGroupNotFound
		}
		return nil, fmt.Errorf("find group: %w", err)
	}
	return group, nil
}

func (s *ChatService) CreateGroup(ctx context.Context, owner entities.User, name, description string) (*entities.Group, error) {
	name, err := validGroupName(name)
	if err != nil {
		return nil, err
	}
	group := &entities.Group{
		ID:          uuid.New(),
		Name:        name,
		Description: strings.TrimSpace(description),
		OwnerID:     owner.ID,
	}
	if err := s.groupRepo.Create(ctx, group); err != nil {
		return nil, fmt.Errorf("create group: %w", err)
	}
	return group, nil
}

func (s *ChatService) UpdateGroup(ctx context.Context, owner entities.User, id uuid.UUID, name, description string) (*entities.Group, error) {
	group, err := s.ownedGroup(ctx, owner, id)
	if err != nil {
		return nil, err
	}
	if group.Name, err = validGroupName(name); err != nil {
		return nil, err
	}
	group.Description = strings.TrimSpace(description)
	if err := s.groupRepo.Update(ctx, group); err != nil {
		return nil, fmt.Errorf("update group: %w", err)
	}
	return group, nil
}

func (s *ChatService) DeleteGroup(ctx context.Context, owner entities.User, id uuid.UUID) error {
	if _, err := s.ownedGroup(ctx, owner, id); err != nil {
		return err
	}
	if err := s.groupRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete group: %w", err)
	}
	return nil
}

// ListMessages returns the latest messages of a group, oldest first.
func (s *ChatService) ListMessages(ctx context.Context, groupID uuid.UUID) ([]entities.Message, error) {
	if _, err := s.GetGroup(ctx, groupID); err != nil {
		return nil, err
	}
	return s.messageRepo.ListByGroupID(ctx, groupID, chatHistoryLength)
}

func (s *ChatService) PostMessage(ctx context.Context, user entities.User, groupID uuid.UUID, content string) (*entities.Message, error) {
	content = strings.TrimSpace(content)
	if content == "" || utf8.RuneCountInString(content) > maxMessageLen {
		return nil, domain.ErrInvalidMessage
	}
	if _, err := s.GetGroup(ctx, groupID); err != nil {
		return nil, err
	}
	msg := &entities.Message{
		GroupID:  groupID,
		UserID:   user.ID,
		Username: user.DisplayName(),
		Content:  content,
	}
	if err := s.messageRepo.Create(ctx, msg); err != nil {
		return nil, fmt.Errorf("create message: %w", err)
	}
	return msg, nil
}

func (s *ChatService) ownedGroup(ctx context.Context, owner entities.User, id uuid.UUID) (*entities.Group, error) {
	group, err := s.GetGroup(ctx, id)
	if err != nil {
		return nil, err
	}
	if group.OwnerID != owner.ID {
		return nil, domain.ErrNotGroupOwner
	}
	return group, nil
}

func validGroupName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" || utf8.RuneCountInString(name) > maxGroupNameLen {
		return "", domain.ErrInvalidGroup
	}
	return name, nil
}
