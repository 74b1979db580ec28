package collector

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/i474232898/weather-forecast-api/internal/config"
	"github.com/i474232898/weather-forecast-api/internal/forecast"
)

func newTestService(t *testing.T) *forecast.Service {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	require.NoError(t, db.AutoMigrate(&forecast.Forecast{}))
	return forecast.NewService(forecast.NewRepository(db))
}

func testLocation() config.CollectorLocation {
	lat, lon := 52.52, 13.4
	return config.CollectorLocation{Name: "berlin", Lat: &lat, Lon: &lon}
}

func TestCollectorRunStoresBatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(dailyPayload))
	}))
	defer srv.Close()

	client := NewOpenMeteoClient(srv.Client())
	client.baseURL = srv.URL

	svc := newTestService(t)
	c := New(slog.New(slog.NewTextHandler(io.Discard, nil)), client, svc, testLocation(), 7)

	require.NoError(t, c.Run(context.Background()))

	latest, err := svc.Latest(context.Background())
	require.NoError(t, err)
	require.Len(t, latest, 2)
	require.True(t, latest[0].CollectionTime.Equal(latest[1].CollectionTime))
	require.Equal(t, "2025-09-20", latest[0].ForecastDate.Format("2006-01-02"))
}

func TestCollectorRunWithoutCoordinates(t *testing.T) {
	svc := newTestService(t)
	client := NewOpenMeteoClient(http.DefaultClient)
	c := New(slog.New(slog.NewTextHandler(io.Discard, nil)), client, svc, config.CollectorLocation{Name: "nowhere"}, 7)

	require.Error(t, c.Run(context.Background()))
}
