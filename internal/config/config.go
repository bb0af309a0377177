// Package config loads the immutable application configuration.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment names.
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// Database drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// DotEnvPaths are the locations searched for a .env file, first match wins.
var DotEnvPaths = []string{
	".env",
	"../.env",
	"../../.env",
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port        string
	CORSOrigins []string
}

// DatabaseConfig holds connection settings for either supported driver.
type DatabaseConfig struct {
	Driver   string
	Path     string
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds bearer token settings.
type JWTConfig struct {
	Secret    string
	ExpiresIn time.Duration
}

// StravaConfig holds OAuth client settings for the Strava integration.
type StravaConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURI  string
}

// Configured reports whether both client credentials are present.
func (s StravaConfig) Configured() bool {
	return s.ClientID != "" && s.ClientSecret != ""
}

// AMQPConfig holds notification broker settings. An empty URL disables publishing.
type AMQPConfig struct {
	URL   string
	Queue string
}

// MarketConfig holds settings for the price proxies.
type MarketConfig struct {
	USDZARRate string
}

// Config is built once at startup and passed to every component that needs it.
// Nothing mutates it afterwards.
type Config struct {
	Env         string
	LogLevel    string
	FrontendURL string
	HTTPTimeout time.Duration

	Server   ServerConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Strava   StravaConfig
	AMQP     AMQPConfig
	Market   MarketConfig
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	loadDotEnv()
	return FromViper(newViper())
}

func loadDotEnv() {
	for _, path := range DotEnvPaths {
		if err := godotenv.Load(path); err == nil {
			return
		}
	}
}

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", Development)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("PORT", "3001")
	v.SetDefault("CORS_ORIGINS", "http://localhost:5173")
	v.SetDefault("FRONTEND_URL", "http://localhost:5173")
	v.SetDefault("HTTP_TIMEOUT", "10s")

	v.SetDefault("DB_DRIVER", DriverSQLite)
	v.SetDefault("DB_PATH", "bankapp.db")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "bankapp")
	v.SetDefault("DB_PASSWORD", "bankapp")
	v.SetDefault("DB_NAME", "bankapp")
	v.SetDefault("DB_SSLMODE", "disable")

	v.SetDefault("JWT_SECRET", "dev-secret-change-me")
	v.SetDefault("JWT_EXPIRES_IN", "24h")

	v.SetDefault("STRAVA_REDIRECT_URI", "http://localhost:3001/api/strava/callback")

	v.SetDefault("AMQP_QUEUE", "notifications_queue")
	v.SetDefault("USD_ZAR_RATE", "18.50")
}

// FromViper builds a Config from an already populated viper instance.
func FromViper(v *viper.Viper) (*Config, error) {
	jwtTTL, err := time.ParseDuration(v.GetString("JWT_EXPIRES_IN"))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_EXPIRES_IN: %w", err)
	}
	httpTimeout, err := time.ParseDuration(v.GetString("HTTP_TIMEOUT"))
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
	}

	cfg := &Config{
		Env:         strings.ToLower(v.GetString("ENV")),
		LogLevel:    v.GetString("LOG_LEVEL"),
		FrontendURL: strings.TrimRight(v.GetString("FRONTEND_URL"), "/"),
		HTTPTimeout: httpTimeout,
		Server: ServerConfig{
			Port:        v.GetString("PORT"),
			CORSOrigins: splitList(v.GetString("CORS_ORIGINS")),
		},
		Database: DatabaseConfig{
			Driver:   strings.ToLower(v.GetString("DB_DRIVER")),
			Path:     v.GetString("DB_PATH"),
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			Name:     v.GetString("DB_NAME"),
			SSLMode:  v.GetString("DB_SSLMODE"),
		},
		JWT: JWTConfig{
			Secret:    v.GetString("JWT_SECRET"),
			ExpiresIn: jwtTTL,
		},
		Strava: StravaConfig{
			ClientID:     v.GetString("STRAVA_CLIENT_ID"),
			ClientSecret: v.GetString("STRAVA_CLIENT_SECRET"),
			RedirectURI:  v.GetString("STRAVA_REDIRECT_URI"),
		},
		AMQP: AMQPConfig{
			URL:   v.GetString("AMQP_URL"),
			Queue: v.GetString("AMQP_QUEUE"),
		},
		Market: MarketConfig{
			USDZARRate: v.GetString("USD_ZAR_RATE"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Database.Driver {
	case DriverSQLite, DriverPostgres:
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.Database.Driver)
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET must not be empty")
	}
	if c.Env == Production && c.JWT.Secret == "dev-secret-change-me" {
		return fmt.Errorf("JWT_SECRET must be set in production")
	}
	return nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
