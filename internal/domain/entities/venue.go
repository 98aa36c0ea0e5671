package entities

import "time"

// Venue is a bookable stadium.
type Venue struct {
	ID           uint
	Name         string
	Location     string
	SportType    string
	Capacity     int
	Description  string
	PricePerHour float64
	CreatedAt    time.Time
}
