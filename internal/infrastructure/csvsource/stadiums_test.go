package csvsource

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"venuehub/internal/domain"
)

const sample = "\ufeffConfederation,Stadium,City,HomeTeams,Capacity,Country,IOC\n" +
	"UEFA,Camp Nou,Barcelona,FC Barcelona,99354,Spain,ESP\n" +
	"CONMEBOL,\"Estadio Monumental\",Buenos Aires,\"River Plate, Argentina\",\"83,214\",Argentina,ARG\n" +
	"AFC,Short Row,Doha\n"

func TestReadStadiums(t *testing.T) {
	rows, err := ReadStadiums(context.Background(), strings.NewReader(sample))
	if err != nil {
		t.Fatalf("ReadStadiums: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}
	first := rows[0]
	if first.Confederation != "UEFA" || first.Stadium != "Camp Nou" || first.City != "Barcelona" ||
		first.Country != "Spain" || first.Capacity != "99354" || first.HomeTeams != "FC Barcelona" {
		t.Fatalf("unexpected first row: %+v", first)
	}
	if rows[1].Capacity != "83,214" || rows[1].HomeTeams != "River Plate, Argentina" {
		t.Fatalf("quoted fields not preserved: %+v", rows[1])
	}
	if rows[2].Country != "" || rows[2].Capacity != "" {
		t.Fatalf("short row should leave missing columns empty: %+v", rows[2])
	}
}

func TestReadStadiums_MissingColumn(t *testing.T) {
	_, err := ReadStadiums(context.Background(), strings.NewReader("Stadium,City\nX,Y\n"))
	if err == nil || !strings.Contains(err.Error(), "Confederation") {
		t.Fatalf("err = %v, want missing column error", err)
	}
}

func TestStadiumFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "stadiums.csv")
	if err := os.WriteFile(path, []byte(sample), 0o600); err != nil {
		t.Fatal(err)
	}
	rows, err := NewStadiumFile(path).Rows(context.Background())
	if err != nil || len(rows) != 3 {
		t.Fatalf("Rows = %d, %v", len(rows), err)
	}

	_, err = NewStadiumFile(filepath.Join(dir, "missing.csv")).Rows(context.Background())
	if !errors.Is(err, domain.ErrStadiumFileMissing) {
		t.Fatalf("err = %v, want ErrStadiumFileMissing", err)
	}
}
