package database

import (
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"venuehub/pkg/slot"
)

func TestDateMapping(t *testing.T) {
	in := time.Date(2026, 11, 2, 15, 4, 0, 0, time.FixedZone("WIB", 7*3600))
	d := timeToPgtypeDate(in)
	if !d.Valid {
		t.Fatal("expected valid date")
	}
	got := pgtypeDateToTime(d)
	if !got.Equal(time.Date(2026, 11, 2, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("date round trip = %v", got)
	}
	if timeToPgtypeDate(time.Time{}).Valid || !pgtypeDateToTime(pgtype.Date{}).IsZero() {
		t.Fatal("zero date should map to NULL and back")
	}
}

func TestClockMapping(t *testing.T) {
	c := slot.NewClock(21, 15)
	if got := pgtypeTimeToClock(clockToPgtypeTime(c)); got != c {
		t.Fatalf("clock round trip = %v", got)
	}
	if pgtypeTimeToClock(pgtype.Time{}) != 0 {
		t.Fatal("NULL time should map to midnight")
	}
}

func TestTimestamptzMapping(t *testing.T) {
	if !pgtypeTimestamptzToTime(pgtype.Timestamptz{}).IsZero() {
		t.Fatal("NULL timestamptz should be zero time")
	}
	now := time.Now()
	if !pgtypeTimestamptzToTime(pgtype.Timestamptz{Time: now, Valid: true}).Equal(now) {
		t.Fatal("timestamptz mapping changed value")
	}
}

func TestNumericMapping(t *testing.T) {
	var n pgtype.Numeric
	if err := n.Scan("100.00"); err != nil {
		t.Fatalf("scan: %v", err)
	}
	if got := pgtypeNumericToFloat(n); got != 100 {
		t.Fatalf("numeric = %v, want 100", got)
	}
	if pgtypeNumericToFloat(pgtype.Numeric{}) != 0 {
		t.Fatal("NULL numeric should be 0")
	}
}
