package config

import (
	"fmt"
	"net"
	"net/url"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all application configuration
//
//nolint:govet // Field alignment optimization would reduce readability
type Config struct {
	Server        ServerConfig
	Database      DatabaseConfig
	Auth          AuthConfig
	Realtime      RealtimeConfig
	Logging       LoggingConfig
	Observability ObservabilityConfig
	Profiling     ProfilingConfig
	Cache         CacheConfig
}

type ServerConfig struct {
	Port           string
	GinMode        string
	AppEnv         string
	AllowedOrigins []string
	StaticDir      string
	LoginPage      string
	// Per-IP token bucket applied to auth and write endpoints. Defaults only
	// stop floods, since a campus NAT puts many users behind one address.
	RateLimitRPS   float64
	RateLimitBurst int
	MaxBodyBytes   int64
}

type DatabaseConfig struct {
	URL            string
	MaxConns       int32
	MinConns       int32
	ConnectRetries int
	MigrationsPath string
}

type AuthConfig struct {
	// EmailDomain is the institutional domain every signup/login email must use
	EmailDomain string
}

type RealtimeConfig struct {
	SendBuffer            int
	PersistBuffer         int
	PingIntervalSeconds   int
	ChatPersistTimeoutSec int
	AllowedOrigins        []string
}

type LoggingConfig struct {
	Level      string
	Dir        string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

type ObservabilityConfig struct {
	ExporterEndpoint  string
	ServiceName       string
	ServiceVersion    string
	ServiceInstanceID string
	SampleRatio       float64
}

type ProfilingConfig struct {
	Enabled               bool
	Endpoint              string
	AppName               string
	SampleTypes           string
	UploadIntervalSeconds int
}

type CacheConfig struct {
	DirectoryTTLSeconds   int  // TTL for cached events/teachers listings
	DisableDirectoryCache bool // Read listings from the database on every request
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("PORT", "3000")
	v.SetDefault("GIN_MODE", "release")
	v.SetDefault("APP_ENV", "production")
	v.SetDefault("ALLOWED_CORS_ORIGINS", "*")
	v.SetDefault("STATIC_DIR", "public")
	v.SetDefault("LOGIN_PAGE", "login.html")
	v.SetDefault("RATE_LIMIT_RPS", 50)
	v.SetDefault("RATE_LIMIT_BURST", 200)
	v.SetDefault("MAX_BODY_BYTES", 1<<20)
	v.SetDefault("PGHOST", "localhost")
	v.SetDefault("PGPORT", "5432")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("DB_MIN_CONNS", 1)
	v.SetDefault("DB_CONNECT_RETRIES", 5)
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("EMAIL_DOMAIN", "psgtech.ac.in")
	v.SetDefault("WS_SEND_BUFFER", 64)
	v.SetDefault("WS_PERSIST_BUFFER", 256)
	v.SetDefault("WS_PING_INTERVAL_SECONDS", 25)
	v.SetDefault("CHAT_PERSIST_TIMEOUT_SECONDS", 5)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_DIR", "")
	v.SetDefault("LOG_MAX_SIZE_MB", 100)
	v.SetDefault("LOG_MAX_BACKUPS", 5)
	v.SetDefault("LOG_MAX_AGE_DAYS", 14)
	v.SetDefault("O11Y_EXPORTER_ENDPOINT", "")
	v.SetDefault("O11Y_SERVICE_NAME", "campus-portal-api")
	v.SetDefault("O11Y_SERVICE_VERSION", "1.0.0")
	v.SetDefault("O11Y_TRACE_SAMPLE_RATIO", 1.0)
	v.SetDefault("O11Y_PROFILING_ENABLED", false)
	v.SetDefault("O11Y_PROFILING_APP_NAME", "campus-portal-api")
	v.SetDefault("O11Y_PROFILING_SAMPLE_TYPES", "cpu,alloc_space,goroutines")
	v.SetDefault("O11Y_PROFILING_UPLOAD_INTERVAL_SECONDS", 15)
	v.SetDefault("DIRECTORY_CACHE_TTL", 60)
	v.SetDefault("DISABLE_DIRECTORY_CACHE", false)

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read from .env file if it exists
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AddConfigPath("..")
	_ = v.ReadInConfig() //nolint:errcheck // Ignore error if .env file doesn't exist

	databaseURL := v.GetString("DATABASE_URL")
	if databaseURL == "" {
		databaseURL = BuildDatabaseURL(
			v.GetString("PGHOST"),
			v.GetString("PGPORT"),
			v.GetString("PGUSER"),
			v.GetString("PGPASSWORD"),
			v.GetString("PGDATABASE"),
		)
	}

	origins := splitList(v.GetString("ALLOWED_CORS_ORIGINS"))

	cfg := &Config{
		Server: ServerConfig{
			Port:           v.GetString("PORT"),
			GinMode:        v.GetString("GIN_MODE"),
			AppEnv:         v.GetString("APP_ENV"),
			AllowedOrigins: origins,
			StaticDir:      v.GetString("STATIC_DIR"),
			LoginPage:      v.GetString("LOGIN_PAGE"),
			RateLimitRPS:   v.GetFloat64("RATE_LIMIT_RPS"),
			RateLimitBurst: v.GetInt("RATE_LIMIT_BURST"),
			MaxBodyBytes:   v.GetInt64("MAX_BODY_BYTES"),
		},
		Database: DatabaseConfig{
			URL:            databaseURL,
			MaxConns:       v.GetInt32("DB_MAX_CONNS"),
			MinConns:       v.GetInt32("DB_MIN_CONNS"),
			ConnectRetries: v.GetInt("DB_CONNECT_RETRIES"),
			MigrationsPath: v.GetString("MIGRATIONS_PATH"),
		},
		Auth: AuthConfig{
			EmailDomain: strings.TrimPrefix(v.GetString("EMAIL_DOMAIN"), "@"),
		},
		Realtime: RealtimeConfig{
			SendBuffer:            v.GetInt("WS_SEND_BUFFER"),
			PersistBuffer:         v.GetInt("WS_PERSIST_BUFFER"),
			PingIntervalSeconds:   v.GetInt("WS_PING_INTERVAL_SECONDS"),
			ChatPersistTimeoutSec: v.GetInt("CHAT_PERSIST_TIMEOUT_SECONDS"),
			AllowedOrigins:        origins,
		},
		Logging: LoggingConfig{
			Level:      v.GetString("LOG_LEVEL"),
			Dir:        v.GetString("LOG_DIR"),
			MaxSizeMB:  v.GetInt("LOG_MAX_SIZE_MB"),
			MaxBackups: v.GetInt("LOG_MAX_BACKUPS"),
			MaxAgeDays: v.GetInt("LOG_MAX_AGE_DAYS"),
		},
		Observability: ObservabilityConfig{
			ExporterEndpoint:  v.GetString("O11Y_EXPORTER_ENDPOINT"),
			ServiceName:       v.GetString("O11Y_SERVICE_NAME"),
			ServiceVersion:    v.GetString("O11Y_SERVICE_VERSION"),
			ServiceInstanceID: v.GetString("SERVICE_INSTANCE_ID"),
			SampleRatio:       v.GetFloat64("O11Y_TRACE_SAMPLE_RATIO"),
		},
		Profiling: ProfilingConfig{
			Enabled:               v.GetBool("O11Y_PROFILING_ENABLED"),
			Endpoint:              v.GetString("O11Y_PROFILING_ENDPOINT"),
			AppName:               v.GetString("O11Y_PROFILING_APP_NAME"),
			SampleTypes:           v.GetString("O11Y_PROFILING_SAMPLE_TYPES"),
			UploadIntervalSeconds: v.GetInt("O11Y_PROFILING_UPLOAD_INTERVAL_SECONDS"),
		},
		Cache: CacheConfig{
			DirectoryTTLSeconds:   v.GetInt("DIRECTORY_CACHE_TTL"),
			DisableDirectoryCache: v.GetBool("DISABLE_DIRECTORY_CACHE"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// BuildDatabaseURL assembles a postgres URL from libpq-style PG* settings.
// Returns "" when no database name is known.
func BuildDatabaseURL(host, port, user, password, database string) string {
	if database == "" {
		return ""
	}
	u := url.URL{
		Scheme: "postgres",
		Host:   net.JoinHostPort(host, port),
		Path:   "/" + database,
	}
	if user != "" {
		if password != "" {
			u.User = url.UserPassword(user, password)
		} else {
			u.User = url.User(user)
		}
	}
	return u.String()
}

func splitList(raw string) []string {
	out := []string{}
	for _, item := range strings.Split(raw, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}

// Validate checks if required configuration values are set
func (c *Config) Validate() error {
	if c.Database.URL == "" {
		return fmt.Errorf("DATABASE_URL or PGDATABASE is required")
	}
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}
	if c.Auth.EmailDomain == "" {
		return fmt.Errorf("EMAIL_DOMAIN is required")
	}
	if c.Database.MaxConns < c.Database.MinConns {
		return fmt.Errorf("DB_MAX_CONNS must be >= DB_MIN_CONNS")
	}
	if c.Server.RateLimitRPS <= 0 || c.Server.RateLimitBurst <= 0 {
		return fmt.Errorf("RATE_LIMIT_RPS and RATE_LIMIT_BURST must be positive")
	}
	if c.Server.MaxBodyBytes <= 0 {
		return fmt.Errorf("MAX_BODY_BYTES must be positive")
	}
	if c.Realtime.SendBuffer <= 0 {
		return fmt.Errorf("WS_SEND_BUFFER must be positive")
	}
	if c.Realtime.PersistBuffer <= 0 {
		return fmt.Errorf("WS_PERSIST_BUFFER must be positive")
	}
	if c.Profiling.Enabled && c.Profiling.Endpoint == "" {
		return fmt.Errorf("O11Y_PROFILING_ENDPOINT is required when profiling is enabled")
	}
	return nil
}

// AllowAllOrigins reports whether CORS (and websocket origin checks) are open
func (c *Config) AllowAllOrigins() bool {
	for _, o := range c.Server.AllowedOrigins {
		if o == "*" {
			return true
		}
	}
	return len(c.Server.AllowedOrigins) == 0
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.Server.AppEnv == "production"
}
