package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"venuehub/internal/domain"
	"venuehub/internal/domain/entities"
	"venuehub/internal/ports/output"
)

var (
	_ output.GroupRepository   = (*GroupRepository)(nil)
	_ output.MessageRepository = (*MessageRepository)(nil)
)

// GroupRepository stores chat groups.
type GroupRepository struct {
	db DB
}

func NewGroupRepository(db DB) *GroupRepository {
	return &GroupRepository{db: db}
}

func scanGroup(row pgx.Row) (entities.Group, error) {
	var (
		g         entities.Group
		createdAt pgtype.Timestamptz
	)
	if err := row.Scan(&g.ID, &g.Name, &g.Description, &g.OwnerID, &createdAt); err != nil {
		return entities.Group{}, err
	}
	g.CreatedAt = pgtypeTimestamptzToTime(createdAt)
	return g, nil
}

func (r *GroupRepository) List(ctx context.Context, limit int) ([]entities.Group, error) {
	query := `SELECT id, name, description, owner_id, created_at FROM chat_groups ORDER BY created_at, id`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT $1`
		args = append(args, limit)
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list groups: %w", err)
	}
	defer rows.Close()

	out := []entities.Group{}
	for rows.Next() {
		g, err := scanGroup(rows)
		if err != nil {
			return nil, fmt.Errorf("scan group: %w", err)
		}
		out = append(out, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list groups: %w", err)
	}
	return out, nil
}

func (r *GroupRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.Group, error) {
	g, err := scanGroup(r.db.QueryRow(ctx,
		`SELECT id, name, description, owner_id, created_at FROM chat_groups WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrGroupNotFound
		}
		return nil, fmt.Errorf("get group by id: %w", err)
	}
	return &g, nil
}

func (r *GroupRepository) Create(ctx context.Context, group *entities.Group) error {
	var createdAt pgtype.Timestamptz
	err := r.db.QueryRow(ctx, `
		INSERT INTO chat_groups (id, name, description, owner_id)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at`,
		group.ID, group.Name, group.Description, group.OwnerID,
	).Scan(&createdAt)
	if err != nil {
		return fmt.Errorf("create group: %w", err)
	}
	group.CreatedAt = pgtypeTimestamptzToTime(createdAt)
	return nil
}

func (r *GroupRepository) Update(ctx context.Context, group *entities.Group) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE chat_groups SET name = $2, description = $3 WHERE id = $1`,
		group.ID, group.Name, group.Description)
	if err != nil {
		return fmt.Errorf("update group: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrGroupNotFound
	}
	return nil
}

func (r *GroupRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM chat_groups WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete group: %w", err)
	}
	return nil
}

// MessageRepository stores chat messages.
type MessageRepository struct {
	db DB
}

func NewMessageRepository(db DB) *MessageRepository {
	return &MessageRepository{db: db}
}

func (r *MessageRepository) ListByGroupID(ctx context.Context, groupID uuid.UUID, limit int) ([]entities.Message, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, group_id, user_id, username, content, created_at FROM (
			SELECT id, group_id, user_id, username, content, created_at
			FROM chat_messages
			WHERE group_id = $1
			ORDER BY id DESC
			LIMIT $2
		) latest
		ORDER BY id`, groupID, limit)
	if err != nil {
		return nil, fmt.Errorf("get messages by group id: %w", err)
	}
	defer rows.Close()

	out := []entities.Message{}
	for rows.Next() {
		var (
			m         entities.Message
			id        int64
			createdAt pgtype.Timestamptz
		)
		if err := rows.Scan(&id, &m.GroupID, &m.UserID, &m.Username, &m.Content, &createdAt); err != nil {
			return nil, fmt.Errorf("scan message: %w", err)
		}
		m.ID = uint(id)
		m.CreatedAt = pgtypeTimestamptzToTime(createdAt)
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get messages by group id: %w", err)
	}
	return out, nil
}

func (r *MessageRepository) Create(ctx context.Context, message *entities.Message) error {
	var (
		id        int64
		createdAt pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, `
		INSERT INTO chat_messages (group_id, user_id, username, content)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`,
		message.GroupID, message.UserID, message.Username, message.Content,
	).Scan(&id, &createdAt)
	if err != nil {
		return fmt.Errorf("create message: %w", err)
	}
	message.ID = uint(id)
	message.CreatedAt = pgtypeTimestamptzToTime(createdAt)
	return nil
}
