package database

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"

	"venuehub/internal/domain"
	"venuehub/internal/domain/entities"
	"venuehub/pkg/slot"
)

// openTestDB connects to VENUEHUB_TEST_DATABASE_URL, migrates it and empties
// every table. Tests are skipped when the variable is unset.
func openTestDB(t *testing.T) DB {
	t.Helper()
	dsn := os.Getenv("VENUEHUB_TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("VENUEHUB_TEST_DATABASE_URL not set")
	}
	if err := RunMigrations(dsn, ""); err != nil {
		t.Fatalf("RunMigrations() error = %v", err)
	}
	ctx := context.Background()
	pool, err := NewPool(ctx, dsn)
	if err != nil {
		t.Fatalf("NewPool() error = %v", err)
	}
	t.Cleanup(pool.Close)
	if _, err := pool.Exec(ctx, `TRUNCATE chat_messages, chat_groups, bookings, venues, threads, matches RESTART IDENTITY CASCADE`); err != nil {
		t.Fatalf("truncate: %v", err)
	}
	return pool
}

func TestVenueRepository(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	repo := NewVenueRepository(db)

	camp := entities.Venue{Name: "Camp Nou", Location: "Barcelona, Spain", SportType: "Football", Capacity: 99354, PricePerHour: 100}
	created, err := repo.GetOrCreateByName(ctx, &camp)
	if err != nil || !created || camp.ID == 0 {
		t.Fatalf("first GetOrCreateByName = %v, %v (id %d)", created, err, camp.ID)
	}
	again := entities.Venue{Name: "Camp Nou", Capacity: 1}
	created, err = repo.GetOrCreateByName(ctx, &again)
	if err != nil || created || again.ID != camp.ID || again.Capacity != 99354 {
		t.Fatalf("second GetOrCreateByName = %v, %v, %+v", created, err, again)
	}

	got, err := repo.FindByID(ctx, camp.ID)
	if err != nil || got.PricePerHour != 100 || got.Location != "Barcelona, Spain" {
		t.Fatalf("FindByID = %+v, %v", got, err)
	}
	if _, err := repo.FindByID(ctx, 9999); !errors.Is(err, domain.ErrVenueNotFound) {
		t.Fatalf("FindByID(missing) error = %v", err)
	}
	if n, err := repo.Count(ctx); err != nil || n != 1 {
		t.Fatalf("Count = %d, %v", n, err)
	}
}

func TestBookingRepository(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	venue := entities.Venue{Name: "Anfield", SportType: "Football", Capacity: 61276, PricePerHour: 100}
	if _, err := NewVenueRepository(db).GetOrCreateByName(ctx, &venue); err != nil {
		t.Fatal(err)
	}
	repo := NewBookingRepository(db)
	date := time.Date(2030, 1, 2, 0, 0, 0, 0, time.UTC)

	first := &entities.Booking{UserID: "u1", Username: "Budi", VenueID: venue.ID, Date: date, Time: slot.NewClock(18, 30), Status: domain.StatusPending}
	if err := repo.Create(ctx, first); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	// Non-exclusive creation allows a shared slot.
	shared := *first
	shared.UserID = "u2"
	if err := repo.Create(ctx, &shared); err != nil {
		t.Fatalf("Create(shared slot) error = %v", err)
	}
	taken := *first
	if err := repo.CreateExclusive(ctx, &taken); !errors.Is(err, domain.ErrSlotTaken) {
		t.Fatalf("CreateExclusive(taken) error = %v, want ErrSlotTaken", err)
	}
	free := *first
	free.Time = slot.NewClock(20, 0)
	if err := repo.CreateExclusive(ctx, &free); err != nil {
		t.Fatalf("CreateExclusive(free) error = %v", err)
	}

	list, err := repo.FindByUserID(ctx, "u1")
	if err != nil || len(list) != 2 {
		t.Fatalf("FindByUserID = %d bookings, %v", len(list), err)
	}
	if list[0].Time != slot.NewClock(20, 0) || list[0].Venue == nil || list[0].Venue.Name != "Anfield" {
		t.Fatalf("first listed booking = %+v", list[0])
	}
	if !list[1].Date.Equal(date) {
		t.Fatalf("date round trip = %v", list[1].Date)
	}

	if err := repo.Delete(ctx, first.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := repo.FindByID(ctx, first.ID); !errors.Is(err, domain.ErrBookingNotFound) {
		t.Fatalf("FindByID(deleted) error = %v", err)
	}
}

func TestChatRepositories(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	groups := NewGroupRepository(db)
	messages := NewMessageRepository(db)

	g := &entities.Group{ID: uuid.New(), Name: "Jakmania", OwnerID: "u1"}
	if err := groups.Create(ctx, g); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	for _, text := range []string{"one", "two", "three"} {
		if err := messages.Create(ctx, &entities.Message{GroupID: g.ID, UserID: "u1", Username: "Budi", Content: text}); err != nil {
			t.Fatal(err)
		}
	}
	got, err := messages.ListByGroupID(ctx, g.ID, 2)
	if err != nil || len(got) != 2 || got[0].Content != "two" || got[1].Content != "three" {
		t.Fatalf("ListByGroupID = %+v, %v", got, err)
	}

	if err := groups.Delete(ctx, g.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := groups.FindByID(ctx, g.ID); !errors.Is(err, domain.ErrGroupNotFound) {
		t.Fatalf("FindByID(deleted) error = %v", err)
	}
}
