package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	HTTPAddr       string `envconfig:"HTTP_ADDR" default:":8080"`
	DatabaseURL    string `envconfig:"DATABASE_URL"`
	MigrationsPath string `envconfig:"MIGRATIONS_PATH"`
	Timezone       string `envconfig:"TIMEZONE" default:"Asia/Jakarta"`

	// Seed
	StadiumCSVPath string `envconfig:"STADIUM_CSV_PATH" default:"data/stadiums.csv"`
	SeedOnStart    bool   `envconfig:"SEED_ON_START" default:"false"`

	BookingExclusive bool `envconfig:"BOOKING_EXCLUSIVE" default:"false"`

	// Web
	JWTSecret     string `envconfig:"JWT_SECRET"`
	LoginURL      string `envconfig:"LOGIN_URL" default:"/login/"`
	DefaultLocale string `envconfig:"DEFAULT_LOCALE" default:"en"`
	GinMode       string `envconfig:"GIN_MODE" default:"release"`

	// Redis (optional)
	RedisAddr     string        `envconfig:"REDIS_ADDR"`
	RedisPassword string        `envconfig:"REDIS_PASSWORD"`
	RedisDB       int           `envconfig:"REDIS_DB" default:"0"`
	VenueCacheTTL time.Duration `envconfig:"VENUE_CACHE_TTL" default:"5m"`

	// RabbitMQ (optional)
	AMQPURL      string `envconfig:"AMQP_URL"`
	AMQPExchange string `envconfig:"AMQP_EXCHANGE" default:"venuehub.bookings"`

	// Discord webhook (optional)
	DiscordWebhookID    string `envconfig:"DISCORD_WEBHOOK_ID"`
	DiscordWebhookToken string `envconfig:"DISCORD_WEBHOOK_TOKEN"`

	OTLPEndpoint string `envconfig:"OTEL_EXPORTER_OTLP_ENDPOINT"`
}

// Load reads the environment (and an optional .env file) and validates it.
func Load() (*Config, error) {
	// .env is optional when variables come from the environment (Docker, CI).
	_ = godotenv.Load()

	cfg := &Config{}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadForTool is Load without the web-only requirements, for the seed and
// token commands.
func LoadForTool() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.validateDatabase(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.JWTSecret) == "" {
		return fmt.Errorf("config: JWT_SECRET is required")
	}
	if len(c.JWTSecret) < 16 {
		return fmt.Errorf("config: JWT_SECRET must be at least 16 characters")
	}

	if err := c.validateDatabase(); err != nil {
		return err
	}

	if !strings.HasPrefix(c.LoginURL, "/") && !strings.HasPrefix(c.LoginURL, "http") {
		return fmt.Errorf("config: LOGIN_URL must be a path or an absolute URL (%q)", c.LoginURL)
	}

	if c.VenueCacheTTL <= 0 {
		return fmt.Errorf("config: VENUE_CACHE_TTL must be positive")
	}

	if (c.DiscordWebhookID == "") != (c.DiscordWebhookToken == "") {
		return fmt.Errorf("config: DISCORD_WEBHOOK_ID and DISCORD_WEBHOOK_TOKEN must be set together")
	}
	for _, r := range c.DiscordWebhookID {
		if r < '0' || r > '9' {
			return fmt.Errorf("config: DISCORD_WEBHOOK_ID must be a Discord snowflake (digits only)")
		}
	}

	switch c.GinMode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("config: GIN_MODE must be debug, release or test (%q)", c.GinMode)
	}

	return nil
}

func (c *Config) validateDatabase() error {
	if strings.TrimSpace(c.DatabaseURL) == "" {
		// Local default when DATABASE_URL is not provided.
		c.DatabaseURL = "postgres://localhost:5432/venuehub?sslmode=disable"
	}

	parsed, err := url.Parse(c.DatabaseURL)
	if err != nil {
		return fmt.Errorf("config: invalid DATABASE_URL (%q): %w", c.DatabaseURL, err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("config: invalid DATABASE_URL (%q): missing scheme or host", c.DatabaseURL)
	}

	return nil
}

// CacheEnabled reports whether the Redis venue cache is configured.
func (c *Config) CacheEnabled() bool { return c.RedisAddr != "" }

// DiscordEnabled reports whether booking events are posted to a Discord webhook.
func (c *Config) DiscordEnabled() bool { return c.DiscordWebhookID != "" }
