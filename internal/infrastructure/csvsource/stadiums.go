// Package csvsource reads the stadium dataset used to seed venues.
package csvsource

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"venuehub/internal/domain"
	"venuehub/internal/ports/output"
)

var _ output.StadiumSource = (*StadiumFile)(nil)

var requiredColumns = []string{"Confederation", "Stadium", "City", "Country", "Capacity", "HomeTeams"}

// StadiumFile reads stadium rows from a CSV file with a header row.
type StadiumFile struct {
	path string
}

func NewStadiumFile(path string) *StadiumFile {
	return &StadiumFile{path: path}
}

func (f *StadiumFile) Rows(ctx context.Context) ([]output.StadiumRow, error) {
	file, err := os.Open(f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrStadiumFileMissing, f.path)
		}
		return nil, fmt.Errorf("open stadiums: %w", err)
	}
	defer file.Close()
	return ReadStadiums(ctx, file)
}

// ReadStadiums parses CSV with a header row. Columns are matched by name;
// extra columns are ignored.
func ReadStadiums(ctx context.Context, r io.Reader) ([]output.StadiumRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read stadium header: %w", err)
	}
	index := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimPrefix(strings.TrimSpace(name), "\ufeff")
		index[name] = i
	}
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("stadium header: missing column %q", col)
		}
	}

	var rows []output.StadiumRow
	for line := 2; ; line++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read stadium line %d: %w", line, err)
		}
		field := func(col string) string {
			i := index[col]
			if i >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[i])
		}
		rows = append(rows, output.StadiumRow{
			Confederation: field("Confederation"),
			Stadium:       field("Stadium"),
			City:          field("City"),
			Country:       field("Country"),
			Capacity:      field("Capacity"),
			HomeTeams:     field("HomeTeams"),
		})
	}
	return rows, nil
}
