package output

import "context"

// StadiumRow is one row of the external stadium dataset.
type StadiumRow struct {
	Confederation string
	Stadium       string
	City          string
	Country       string
	Capacity      string
	HomeTeams     string
}

// StadiumSource yields the rows of the stadium dataset, in file order.
type StadiumSource interface {
	Rows(ctx context.Context) ([]StadiumRow, error)
}
