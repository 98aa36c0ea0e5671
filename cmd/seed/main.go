// Command seed imports the stadium dataset into an empty venue table.
package main

import (
	"context"
	"flag"
	"log"

	"venuehub/internal/application"
	"venuehub/internal/config"
	"venuehub/internal/infrastructure/cache"
	"venuehub/internal/infrastructure/csvsource"
	"venuehub/internal/infrastructure/database"
	"venuehub/internal/ports/output"
)

func main() {
	cfg, err := config.LoadForTool()
	if err != nil {
		log.Fatalf("❌ Invalid configuration: %v", err)
	}
	csvPath := flag.String("csv", cfg.StadiumCSVPath, "stadium dataset (CSV with a header row)")
	flag.Parse()

	ctx := context.Background()
	if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		log.Fatalf("❌ Failed to apply migrations: %v", err)
	}
	pool, err := database.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("❌ Failed to initialize the database: %v", err)
	}
	defer pool.Close()

	// Inserts go through the cache to invalidate cached listings.
	var venueRepo output.VenueRepository = database.NewVenueRepository(pool)
	if cfg.CacheEnabled() {
		client, err := cache.NewRedisClient(ctx, cache.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			log.Printf("⚠️ Venue cache unreachable, listings may stay stale until TTL: %v", err)
		} else {
			defer client.Close()
			venueRepo = cache.NewVenueCache(venueRepo, cache.NewRedisStore(client), cfg.VenueCacheTTL)
		}
	}

	seeder := application.NewSeedService(venueRepo, csvsource.NewStadiumFile(*csvPath))
	report, err := seeder.SeedVenues(ctx)
	if err != nil {
		log.Fatalf("❌ Venue seed failed: %v", err)
	}
	if report.Skipped {
		log.Println("✅ Venues already present, nothing to do.")
	}
}
