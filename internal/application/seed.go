package application

import (
	"context"
	"fmt"
	"log"
	"slices"
	"strconv"

	"venuehub/internal/domain"
	"venuehub/internal/domain/entities"
	"venuehub/internal/ports/output"
)

// SeedReport summarises one SeedVenues run.
type SeedReport struct {
	Skipped  bool // venues already existed, nothing was read
	Matched  int  // UEFA/AFC rows processed before the cap was reached
	Filtered int  // rows outside the imported confederations
	Existing int  // rows whose stadium name was already stored
	Created  int
}

type SeedService struct {
	venueRepo output.VenueRepository
	source    output.StadiumSource
}

func NewSeedService(venueRepo output.VenueRepository, source output.StadiumSource) *SeedService {
	return &SeedService{venueRepo: venueRepo, source: source}
}

// SeedVenues imports stadiums into an empty venue store. It is a no-op when
// any venue exists, and never creates more than domain.SeedMaxVenues rows.
func (s *SeedService) SeedVenues(ctx context.Context) (SeedReport, error) {
	var report SeedReport

	count, err := s.venueRepo.Count(ctx)
	if err != nil {
		return report, fmt.Errorf("count venues: %w", err)
	}
	if count > 0 {
		report.Skipped = true
		return report, nil
	}

	rows, err := s.source.Rows(ctx)
	if err != nil {
		return report, fmt.Errorf("read stadiums: %w", err)
	}

	for _, row := range rows {
		if !slices.Contains(domain.SeedConfederations, row.Confederation) {
			report.Filtered++
			continue
		}
		if report.Created >= domain.SeedMaxVenues {
			break
		}
		report.Matched++

		venue := VenueFromStadium(row)
		created, err := s.venueRepo.GetOrCreateByName(ctx, &venue)
		if err != nil {
			return report, fmt.Errorf("import %q: %w", row.Stadium, err)
		}
		if created {
			report.Created++
		} else {
			report.Existing++
		}
	}

	log.Printf("✅ Seed: %d venues created (%d existing, %d filtered)", report.Created, report.Existing, report.Filtered)
	return report, nil
}

// VenueFromStadium maps a dataset row to the venue it seeds.
func VenueFromStadium(row output.StadiumRow) entities.Venue {
	return entities.Venue{
		Name:         row.Stadium,
		Location:     fmt.Sprintf("%s, %s", row.City, row.Country),
		SportType:    domain.SeedSportType,
		Capacity:     parseCapacity(row.Capacity),
		Description:  fmt.Sprintf("Football stadium in %s, %s. Home to: %s", row.City, row.Country, row.HomeTeams),
		PricePerHour: domain.SeedDefaultPrice,
	}
}

// parseCapacity accepts ASCII digits only ("99,354" or "" fall back to the default).
func parseCapacity(s string) int {
	if s == "" {
		return domain.SeedDefaultCapacity
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return domain.SeedDefaultCapacity
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return domain.SeedDefaultCapacity
	}
	return n
}
