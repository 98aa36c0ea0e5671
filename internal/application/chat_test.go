package application

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"

	"venuehub/internal/domain"
	"venuehub/internal/domain/entities"
)

func TestChatGroupLifecycle(t *testing.T) {
	groups := &fakeGroupRepo{}
	svc := NewChatService(groups, &fakeMessageRepo{})
	ctx := context.Background()
	owner := entities.User{ID: "owner"}
	stranger := entities.User{ID: "stranger"}

	g, err := svc.CreateGroup(ctx, owner, "  Matchday  ", " talk ")
	if err != nil {
		t.Fatalf("CreateGroup: %v", err)
	}
	if g.Name != "Matchday" || g.Description != "talk" || g.OwnerID != "owner" || g.ID == uuid.Nil {
		t.Fatalf("unexpected group: %+v", g)
	}

	if _, err := svc.UpdateGroup(ctx, stranger, g.ID, "Hijack", ""); !errors.Is(err, domain.ErrNotGroupOwner) {
		t.Fatalf("stranger update err = %v", err)
	}
	if err := svc.DeleteGroup(ctx, stranger, g.ID); !errors.Is(err, domain.ErrNotGroupOwner) {
		t.Fatalf("stranger delete err = %v", err)
	}

	updated, err := svc.UpdateGroup(ctx, owner, g.ID, "Derby", "")
	if err != nil || updated.Name != "Derby" {
		t.Fatalf("UpdateGroup = %+v, %v", updated, err)
	}

	if err := svc.DeleteGroup(ctx, owner, g.ID); err != nil {
		t.Fatalf("DeleteGroup: %v", err)
	}
	if _, err := svc.GetGroup(ctx, g.ID); !errors.Is(err, domain.ErrGroupNotFound) {
		t.Fatalf("GetGroup after delete err = %v", err)
	}
}

func TestChatGroupValidation(t *testing.T) {
	svc := NewChatService(&fakeGroupRepo{}, &fakeMessageRepo{})
	for _, name := range []string{"", "   ", strings.Repeat("x", 101)} {
		if _, err := svc.CreateGroup(context.Background(), entities.User{ID: "u"}, name, ""); !errors.Is(err, domain.ErrInvalidGroup) {
			t.Errorf("CreateGroup(%q) err = %v", name, err)
		}
	}
}

func TestChatMessages(t *testing.T) {
	gid := uuid.New()
	groups := &fakeGroupRepo{groups: []entities.Group{{ID: gid, Name: "Lobby"}}}
	messages := &fakeMessageRepo{}
	svc := NewChatService(groups, messages)
	ctx := context.Background()
	user := entities.User{ID: "u1", Username: "rina"}

	m, err := svc.PostMessage(ctx, user, gid, " hello ")
	if err != nil {
		t.Fatalf("PostMessage: %v", err)
	}
	if m.Content != "hello" || m.Username != "rina" || m.GroupID != gid {
		t.Fatalf("unexpected message: %+v", m)
	}
	if _, err := svc.PostMessage(ctx, user, gid, "  "); !errors.Is(err, domain.ErrInvalidMessage) {
		t.Fatalf("blank message err = %v", err)
	}
	if _, err := svc.PostMessage(ctx, user, uuid.New(), "hi"); !errors.Is(err, domain.ErrGroupNotFound) {
		t.Fatalf("unknown group err = %v", err)
	}

	list, err := svc.ListMessages(ctx, gid)
	if err != nil || len(list) != 1 {
		t.Fatalf("ListMessages = %v, %v", list, err)
	}
	if messages.limit != chatHistoryLength {
		t.Fatalf("history limit = %d", messages.limit)
	}
}
