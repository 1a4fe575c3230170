package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config represents the overall application configuration. It is built
// once at process start from environment variables and never mutated.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
}

// ServerConfig holds the HTTP server configuration.
type ServerConfig struct {
	Port            int
	RateLimitPerSec float64
	RateLimitBurst  int
}

// DatabaseConfig holds the database connection configuration.
// All persistent state lives in the external store these settings
// point at; the schema itself is owned by external tooling.
type DatabaseConfig struct {
	Name            string
	User            string
	Password        string
	Host            string
	Port            string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	AutoMigrate     bool
}

// DSN renders the connection string for the Postgres driver.
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

// Load builds the configuration from the environment. Required database
// settings are validated here so a misconfigured deployment fails at
// startup instead of on the first request.
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:            getenvInt("PORT", 8080),
			RateLimitPerSec: getenvFloat("RATE_LIMIT_PER_SEC", 10),
			RateLimitBurst:  getenvInt("RATE_LIMIT_BURST", 5),
		},
		Database: DatabaseConfig{
			Name:            os.Getenv("DB_NAME"),
			User:            os.Getenv("DB_USER"),
			Password:        os.Getenv("DB_PASSWORD"),
			Host:            os.Getenv("DB_HOST"),
			Port:            getenvDefault("DB_PORT", "5432"),
			SSLMode:         getenvDefault("DB_SSLMODE", "disable"),
			MaxOpenConns:    getenvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:    getenvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: time.Duration(getenvInt("DB_CONN_MAX_LIFETIME_MINUTES", 30)) * time.Minute,
			AutoMigrate:     getenvBool("DB_AUTO_MIGRATE", false),
		},
	}

	for name, value := range map[string]string{
		"DB_NAME": cfg.Database.Name,
		"DB_USER": cfg.Database.User,
		"DB_HOST": cfg.Database.Host,
	} {
		if value == "" {
			return nil, fmt.Errorf("required environment variable %s is not set", name)
		}
	}

	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		return nil, fmt.Errorf("PORT must be a valid port number, got %d", cfg.Server.Port)
	}
	if cfg.Server.RateLimitPerSec <= 0 {
		cfg.Server.RateLimitPerSec = 10
	}
	if cfg.Server.RateLimitBurst <= 0 {
		cfg.Server.RateLimitBurst = 5
	}

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func getenvFloat(key string, def float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}
	return f
}

func getenvBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}
