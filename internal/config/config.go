package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// CollectorLocation identifies the place the background collector fetches
// forecasts for. The collector is disabled when Lat/Lon are unset.
type CollectorLocation struct {
	Name string
	Lat  *float64
	Lon  *float64
}

type AppConfig struct {
	Port     string
	DBPath   string
	AppEnv   string
	LogLevel slog.Level

	// SQLite connection pool.
	DBMaxOpenConns    int
	DBMaxIdleConns    int
	DBConnMaxLifetime time.Duration

	// Background collector.
	CollectorLocation CollectorLocation
	CollectorInterval time.Duration
	CollectorDays     int
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, using environment as-is")
	}

	cfg := &AppConfig{}

	cfg.Port = getenvDefault("PORT", "8080")
	cfg.DBPath = getenvDefault("DB_PATH", "weather_forecast.db")
	cfg.AppEnv = getenvDefault("APP_ENV", "dev")
	cfg.LogLevel = parseLevel(getenvDefault("LOG_LEVEL", "info"))

	cfg.DBMaxOpenConns = getenvInt("DB_MAX_OPEN_CONNS", 1)
	cfg.DBMaxIdleConns = getenvInt("DB_MAX_IDLE_CONNS", 1)

	lifetimeStr := getenvDefault("DB_CONN_MAX_LIFETIME", "1h")
	lifetime, err := time.ParseDuration(lifetimeStr)
	if err != nil {
		return nil, fmt.Errorf("invalid DB_CONN_MAX_LIFETIME: %w", err)
	}
	cfg.DBConnMaxLifetime = lifetime

	// Collector interval: default 6 hours, matching typical daily-forecast
	// refresh cadence.
	intervalStr := getenvDefault("COLLECTOR_INTERVAL", "6h")
	interval, err := time.ParseDuration(intervalStr)
	if err != nil {
		return nil, fmt.Errorf("invalid COLLECTOR_INTERVAL: %w", err)
	}
	cfg.CollectorInterval = interval

	cfg.CollectorDays = getenvInt("COLLECTOR_DAYS", 7)
	if cfg.CollectorDays < 1 || cfg.CollectorDays > 16 {
		return nil, fmt.Errorf("COLLECTOR_DAYS must be between 1 and 16, got %d", cfg.CollectorDays)
	}

	loc, err := loadCollectorLocation()
	if err != nil {
		return nil, err
	}
	cfg.CollectorLocation = loc

	return cfg, nil
}

func loadCollectorLocation() (CollectorLocation, error) {
	loc := CollectorLocation{
		Name: getenvDefault("COLLECTOR_LOCATION", "default"),
	}

	latStr := os.Getenv("COLLECTOR_LAT")
	lonStr := os.Getenv("COLLECTOR_LON")
	if latStr == "" && lonStr == "" {
		return loc, nil
	}
	if latStr == "" || lonStr == "" {
		return loc, fmt.Errorf("COLLECTOR_LAT and COLLECTOR_LON must both be set")
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return loc, fmt.Errorf("invalid COLLECTOR_LAT: %w", err)
	}
	lon, err := strconv.ParseFloat(lonStr, 64)
	if err != nil {
		return loc, fmt.Errorf("invalid COLLECTOR_LON: %w", err)
	}

	loc.Lat = &lat
	loc.Lon = &lon
	return loc, nil
}

// CollectorEnabled reports whether a collection location is configured.
func (c *AppConfig) CollectorEnabled() bool {
	return c.CollectorLocation.Lat != nil && c.CollectorLocation.Lon != nil
}

func parseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}
