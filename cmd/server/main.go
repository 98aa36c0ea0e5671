package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"venuehub/internal/adapters/web"
	"venuehub/internal/application"
	"venuehub/internal/config"
	"venuehub/internal/infrastructure/cache"
	"venuehub/internal/infrastructure/csvsource"
	"venuehub/internal/infrastructure/database"
	"venuehub/internal/infrastructure/i18n"
	"venuehub/internal/infrastructure/notify"
	"venuehub/internal/ports/output"
	"venuehub/pkg/telemetry"
	"venuehub/pkg/tz"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Invalid configuration: %v", err)
	}
	gin.SetMode(cfg.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracer, err := telemetry.InitTracer(ctx, "venuehub", cfg.OTLPEndpoint)
	if err != nil {
		log.Printf("⚠️ Tracing disabled: %v", err)
	}
	defer func() { _ = shutdownTracer(context.Background()) }()

	loc, err := tz.Load(cfg.Timezone)
	if err != nil {
		log.Fatalf("❌ %v", err)
	}

	if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		log.Fatalf("❌ Failed to apply migrations: %v", err)
	}
	pool, err := database.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("❌ Failed to initialize the database: %v", err)
	}
	defer pool.Close()

	var venueRepo output.VenueRepository = database.NewVenueRepository(pool)
	if cfg.CacheEnabled() {
		client, err := cache.NewRedisClient(ctx, cache.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			log.Printf("⚠️ Venue cache disabled: %v", err)
		} else {
			defer client.Close()
			venueRepo = cache.NewVenueCache(venueRepo, cache.NewRedisStore(client), cfg.VenueCacheTTL)
			log.Println("✅ Redis venue cache enabled.")
		}
	}

	if cfg.SeedOnStart {
		seeder := application.NewSeedService(venueRepo, csvsource.NewStadiumFile(cfg.StadiumCSVPath))
		report, err := seeder.SeedVenues(ctx)
		if err != nil {
			log.Fatalf("❌ Venue seed failed: %v", err)
		}
		if report.Skipped {
			log.Println("✅ Venues already present, seed skipped.")
		}
	}

	notifiers := notify.Fanout{}
	if cfg.DiscordEnabled() {
		n, err := notify.NewDiscordNotifier(cfg.DiscordWebhookID, cfg.DiscordWebhookToken)
		if err != nil {
			log.Fatalf("❌ Discord notifier: %v", err)
		}
		notifiers = append(notifiers, n)
	}
	if cfg.AMQPURL != "" {
		pub, err := notify.NewPublisher(cfg.AMQPURL, cfg.AMQPExchange)
		if err != nil {
			log.Fatalf("❌ AMQP publisher: %v", err)
		}
		defer pub.Close()
		notifiers = append(notifiers, pub)
	}

	bookingRepo := database.NewBookingRepository(pool)
	groupRepo := database.NewGroupRepository(pool)

	venueUC := application.NewVenueService(venueRepo)
	bookingUC := application.NewBookingService(bookingRepo, venueRepo, notifiers, application.BookingOptions{
		Exclusive: cfg.BookingExclusive,
		Location:  loc,
	})
	dashboardUC := application.NewDashboardService(
		database.NewThreadRepository(pool),
		database.NewMatchRepository(pool),
		venueRepo,
		groupRepo,
	)
	chatUC := application.NewChatService(groupRepo, database.NewMessageRepository(pool))

	translator, err := i18n.NewTranslator(cfg.DefaultLocale)
	if err != nil {
		log.Fatalf("❌ %v", err)
	}
	handler, err := web.NewHandler(venueUC, bookingUC, dashboardUC, chatUC, translator, web.Options{
		JWTSecret: []byte(cfg.JWTSecret),
		LoginURL:  cfg.LoginURL,
	})
	if err != nil {
		log.Fatalf("❌ %v", err)
	}

	if err := web.NewServer(cfg.HTTPAddr, handler).Run(ctx); err != nil {
		log.Printf("❌ HTTP server: %v", err)
		os.Exit(1)
	}
}
