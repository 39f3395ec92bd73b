// Package config loads application settings from a .env file and environment variables.
// Environment variables always take precedence over .env file values.
package config

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Supported values for DB_DRIVER.
const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
	DriverSQLite   = "sqlite"
)

// Config holds all application configuration.
type Config struct {
	// Driver selects the database dialect: postgres, mysql or sqlite.
	Driver string

	// Either set DatabaseURL directly, or the individual fields.
	DatabaseURL string
	DBUser      string
	DBPass      string
	DBHost      string
	DBPort      string
	DBName      string
	DBSSLMode   string
	SQLitePath  string

	// JWT signing secret and token lifetime.
	JWTSecret string
	TokenTTL  time.Duration

	// Server
	Debug       bool
	Port        string
	TLSDomains  []string
	CORSOrigins []string

	// LegacyMySQLDSN is used only by cmd/migrate.
	LegacyMySQLDSN string
}

// Load reads configuration from a .env file (if present) and then from
// environment variables. Environment variables always win.
func Load() *Config {
	cfg, err := FromViper(newViper())
	if err != nil {
		log.Fatal(err)
	}
	return cfg
}

// FromViper builds a validated Config from v, applying defaults first.
func FromViper(v *viper.Viper) (*Config, error) {
	v.SetDefault("DB_DRIVER", DriverPostgres)
	v.SetDefault("DB_USER", "gym")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_NAME", "gym")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("SQLITE_PATH", "gym.db")
	v.SetDefault("TOKEN_TTL", "24h")
	v.SetDefault("PORT", ":8080")
	v.SetDefault("CORS_ORIGINS", "*")
	v.SetDefault("DEBUG", false)

	cfg := &Config{
		Driver:         strings.ToLower(strings.TrimSpace(v.GetString("DB_DRIVER"))),
		DatabaseURL:    v.GetString("DATABASE_URL"),
		DBUser:         v.GetString("DB_USER"),
		DBPass:         v.GetString("DB_PASS"),
		DBHost:         v.GetString("DB_HOST"),
		DBPort:         v.GetString("DB_PORT"),
		DBName:         v.GetString("DB_NAME"),
		DBSSLMode:      v.GetString("DB_SSLMODE"),
		SQLitePath:     v.GetString("SQLITE_PATH"),
		JWTSecret:      v.GetString("JWT_SECRET"),
		TokenTTL:       v.GetDuration("TOKEN_TTL"),
		Debug:          v.GetBool("DEBUG"),
		Port:           v.GetString("PORT"),
		TLSDomains:     splitTrimmed(v.GetString("TLS_DOMAINS")),
		CORSOrigins:    splitTrimmed(v.GetString("CORS_ORIGINS")),
		LegacyMySQLDSN: v.GetString("LEGACY_MYSQL_DSN"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DSN returns the connection string for the configured driver.
// DATABASE_URL takes precedence over individual fields.
func (c *Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	switch c.Driver {
	case DriverSQLite:
		return "file:" + c.SQLitePath + "?cache=shared"
	case DriverMySQL:
		return fmt.Sprintf(
			"%s:%s@tcp(%s:%s)/%s?parseTime=true",
			c.DBUser,
			c.DBPass,
			c.DBHost,
			c.DBPort,
			c.DBName,
		)
	default:
		return fmt.Sprintf(
			"postgres://%s:%s@%s:%s/%s?sslmode=%s",
			c.DBUser,
			c.DBPass,
			c.DBHost,
			c.DBPort,
			c.DBName,
			c.DBSSLMode,
		)
	}
}

// JWTKey returns the JWT signing key as a byte slice.
func (c *Config) JWTKey() []byte {
	return []byte(c.JWTSecret)
}

func (c *Config) validate() error {
	switch c.Driver {
	case DriverPostgres, DriverMySQL:
		if c.DatabaseURL == "" && c.DBPass == "" {
			return errors.New("config: DATABASE_URL or DB_PASS must be set")
		}
	case DriverSQLite:
	default:
		return fmt.Errorf("config: unsupported DB_DRIVER %q", c.Driver)
	}
	if c.JWTSecret == "" {
		return errors.New("config: JWT_SECRET must be set")
	}
	if c.TokenTTL <= 0 {
		return errors.New("config: TOKEN_TTL must be a positive duration")
	}
	return nil
}

func newViper() *viper.Viper {
	// Silently load .env – OK if the file doesn't exist (production uses real env vars).
	if err := godotenv.Load(); err != nil {
		log.Println("config: no .env file found, using environment variables only")
	}

	v := viper.New()
	v.AutomaticEnv()
	return v
}

func splitTrimmed(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
