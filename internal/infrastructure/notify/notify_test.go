package notify

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"venuehub/internal/domain/entities"
	"venuehub/internal/ports/output"
	"venuehub/pkg/slot"
)

func sampleEvent(kind string) output.BookingEvent {
	return output.BookingEvent{
		Kind: kind,
		Booking: entities.Booking{
			ID:       12,
			UserID:   "u1",
			Username: "rina",
			VenueID:  3,
			Date:     time.Date(2026, 11, 2, 0, 0, 0, 0, time.UTC),
			Time:     slot.NewClock(19, 30),
			Status:   "pending",
		},
		Venue: &entities.Venue{ID: 3, Name: "Camp Nou"},
	}
}

func TestBuildBookingEmbed(t *testing.T) {
	created := BuildBookingEmbed(sampleEvent(output.BookingCreated))
	if created.Color != embedColorCreated || !strings.Contains(created.Title, "New booking") {
		t.Fatalf("unexpected created embed: %+v", created)
	}
	for _, want := range []string{"Camp Nou", "02/11/2026 19:30", "rina"} {
		if !strings.Contains(created.Description, want) {
			t.Errorf("description %q missing %q", created.Description, want)
		}
	}

	ev := sampleEvent(output.BookingCancelled)
	ev.Venue = nil
	cancelled := BuildBookingEmbed(ev)
	if cancelled.Color != embedColorCancelled || !strings.Contains(cancelled.Description, "#3") {
		t.Fatalf("unexpected cancelled embed: %+v", cancelled)
	}
}

func TestBookingMessageJSON(t *testing.T) {
	raw, err := json.Marshal(newBookingMessage(sampleEvent(output.BookingCreated)))
	if err != nil {
		t.Fatal(err)
	}
	var got map[string]any
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatal(err)
	}
	if got["date"] != "2026-11-02" || got["time"] != "19:30" || got["venue_name"] != "Camp Nou" || got["booking_id"] != float64(12) {
		t.Fatalf("unexpected payload: %s", raw)
	}
}

type stubNotifier struct {
	calls int
	err   error
}

func (s *stubNotifier) Notify(ctx context.Context, e output.BookingEvent) error {
	s.calls++
	return s.err
}

func TestFanout(t *testing.T) {
	boom := errors.New("boom")
	a, b := &stubNotifier{err: boom}, &stubNotifier{}
	err := Fanout{a, b}.Notify(context.Background(), sampleEvent(output.BookingCreated))
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}
	if a.calls != 1 || b.calls != 1 {
		t.Fatal("every notifier should be called even after a failure")
	}
	if err := (Fanout{}).Notify(context.Background(), sampleEvent(output.BookingCreated)); err != nil {
		t.Fatalf("empty fanout err = %v", err)
	}
}
