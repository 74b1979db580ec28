package database

import (
	"fmt"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/i474232898/weather-forecast-api/internal/forecast"
)

// Config holds the SQLite connection settings.
type Config struct {
	// Path is the database file. ":memory:" opens a throwaway in-process DB.
	Path string

	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// Open connects to SQLite and migrates the weather_forecast table.
func Open(cfg Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000", cfg.Path)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("access underlying connection pool: %w", err)
	}

	// SQLite is best with low write concurrency.
	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns >= 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	if err := db.AutoMigrate(&forecast.Forecast{}); err != nil {
		return nil, fmt.Errorf("migrate weather_forecast: %w", err)
	}

	return db, nil
}
