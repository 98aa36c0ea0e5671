package domain

// Booking statuses.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
)

// ValidStatus reports whether s is a known booking status.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	}
	return false
}

// Seed import rules.
const (
	SeedMaxVenues       = 50
	SeedDefaultCapacity = 10000
	SeedDefaultPrice    = 100.00
	SeedSportType       = "Football"
)

// SeedConfederations are the confederations imported from the stadium dataset.
var SeedConfederations = []string{"UEFA", "AFC"}

// Dashboard slice sizes.
const (
	DashboardThreads = 5
	DashboardMatches = 5
	DashboardVenues  = 6
	DashboardGroups  = 3
)
