package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, secrets, etc.)
// - default: Values common across all environments (timezone, timeout, etc.)
// Backend-specific requirements are checked by Validate, not by tags, so that the
// memory backend can boot without Airtable credentials.
// -----------------------------------------------------------------------------

const (
	BackendAirtable = "airtable"
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
)

type Config struct {
	Server    ServerConfig
	Store     StoreConfig
	Airtable  AirtableConfig
	Postgres  PostgresConfig
	Redis     RedisConfig
	CORS      CORSConfig
	Log       LogConfig
	JWT       JWTConfig
	Cookie    CookieConfig
	Auth      AuthConfig
	Cache     CacheConfig
	RateLimit RateLimitConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type StoreConfig struct {
	Backend          string        `envconfig:"STORE_BACKEND" default:"airtable"`
	SeedFile         string        `envconfig:"STORE_SEED_FILE"`
	ReadRetries      int           `envconfig:"STORE_READ_RETRIES" default:"2"`
	ReadRetryBackoff time.Duration `envconfig:"STORE_READ_RETRY_BACKOFF" default:"200ms"`
	InfluencerTable  string        `envconfig:"STORE_INFLUENCER_TABLE" default:"influencers"`
	CampaignTable    string        `envconfig:"STORE_CAMPAIGN_TABLE" default:"campaigns"`
	ApplicationTable string        `envconfig:"STORE_APPLICATION_TABLE" default:"applications"`
	// Optional text columns exposing the linked influencer and campaign record ids. When both
	// are set the duplicate check filters on them; otherwise it filters on the channel name
	// and compares the link ids returned with each record.
	InfluencerKeyField string `envconfig:"STORE_APPLICATION_INFLUENCER_KEY_FIELD"`
	CampaignKeyField   string `envconfig:"STORE_APPLICATION_CAMPAIGN_KEY_FIELD"`
}

type AirtableConfig struct {
	Token             string        `envconfig:"AIRTABLE_ACCESS_TOKEN"`
	BaseID            string        `envconfig:"AIRTABLE_BASE_ID"`
	APIURL            string        `envconfig:"AIRTABLE_API_URL" default:"https://api.airtable.com/v0"`
	RequestsPerSecond float64       `envconfig:"AIRTABLE_REQUESTS_PER_SECOND" default:"5"`
	Timeout           time.Duration `envconfig:"AIRTABLE_TIMEOUT" default:"15s"`
}

type PostgresConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER"`
	Password string `envconfig:"DB_PASSWORD"`
	DBName   string `envconfig:"DB_NAME"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Asia/Seoul"`
}

type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR"`
	Password string `envconfig:"REDIS_PASSWORD"`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PATCH,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Seoul"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"32400"` // 9*60*60
}

type JWTConfig struct {
	Secret   string        `envconfig:"JWT_SECRET" required:"true"`
	Duration time.Duration `envconfig:"JWT_DURATION" default:"168h"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN"`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"true"`
	SameSite string `envconfig:"COOKIE_SAME_SITE" default:"Lax"`
}

type AuthConfig struct {
	// contains | exact
	ChannelMatch     string        `envconfig:"AUTH_CHANNEL_MATCH" default:"contains"`
	LockoutThreshold int           `envconfig:"AUTH_LOCKOUT_THRESHOLD" default:"5"`
	LockoutWindow    time.Duration `envconfig:"AUTH_LOCKOUT_WINDOW" default:"15m"`
}

type CacheConfig struct {
	ChannelTTL time.Duration `envconfig:"CACHE_CHANNEL_TTL" default:"5m"`
}

type RateLimitConfig struct {
	LoginPerSecond float64 `envconfig:"RATE_LIMIT_LOGIN_PER_SECOND" default:"1"`
	LoginBurst     int     `envconfig:"RATE_LIMIT_LOGIN_BURST" default:"5"`
}

func (c *PostgresConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c Config) Validate() error {
	switch c.Store.Backend {
	case BackendAirtable:
		if c.Airtable.Token == "" || c.Airtable.BaseID == "" {
			return errors.New("AIRTABLE_ACCESS_TOKEN and AIRTABLE_BASE_ID are required for the airtable backend")
		}
	case BackendPostgres:
		if c.Postgres.User == "" || c.Postgres.DBName == "" {
			return errors.New("DB_USER and DB_NAME are required for the postgres backend")
		}
	case BackendMemory:
	default:
		return fmt.Errorf("unknown STORE_BACKEND %q", c.Store.Backend)
	}

	switch c.Auth.ChannelMatch {
	case "contains", "exact":
	default:
		return fmt.Errorf("unknown AUTH_CHANNEL_MATCH %q", c.Auth.ChannelMatch)
	}
	return nil
}

func LoadConfig() (Config, error) {
	// .env is optional; real environments inject variables directly
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env: %w", err)
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		Store: StoreConfig{
			Backend:          BackendMemory,
			ReadRetries:      0,
			InfluencerTable:  "influencers",
			CampaignTable:    "campaigns",
			ApplicationTable: "applications",
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Seoul",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 32400,
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: 7 * 24 * time.Hour,
		},
		Cookie: CookieConfig{
			Secure:   false,
			SameSite: "Lax",
		},
		Auth: AuthConfig{
			ChannelMatch:     "contains",
			LockoutThreshold: 5,
			LockoutWindow:    15 * time.Minute,
		},
		Cache: CacheConfig{
			ChannelTTL: time.Minute,
		},
		RateLimit: RateLimitConfig{
			LoginPerSecond: 100,
			LoginBurst:     100,
		},
	}
}
