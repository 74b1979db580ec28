package httpapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/i474232898/weather-forecast-api/internal/database"
	"github.com/i474232898/weather-forecast-api/internal/forecast"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	// In-memory SQLite lives per connection; pin the pool to one.
	db, err := database.Open(database.Config{Path: ":memory:", MaxOpenConns: 1, MaxIdleConns: 1})
	require.NoError(t, err)

	svc := forecast.NewService(forecast.NewRepository(db))

	app := fiber.New()
	RegisterRoutes(app, NewHandler(svc, "weather-forecast-api", "test"))
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) (*http.Response, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, raw
}

func validRecord() map[string]any {
	return map[string]any{
		"collection_time": "2025-09-19T10:00:00Z",
		"forecast_date":   "2025-09-20T00:00:00Z",
		"temperature_min": 11,
		"temperature_max": 21,
		"humidity_min":    40,
		"humidity_max":    85,
		"description":     "partly cloudy",
	}
}

func TestInfoAndHealth(t *testing.T) {
	app := newTestApp(t)

	resp, raw := doJSON(t, app, http.MethodGet, "/api/v1/forecast/info", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var info InfoResponse
	require.NoError(t, json.Unmarshal(raw, &info))
	require.Equal(t, "weather-forecast-api", info.Service)
	require.NotEmpty(t, info.Description)

	resp, raw = doJSON(t, app, http.MethodGet, "/api/v1/forecast/health", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var health map[string]string
	require.NoError(t, json.Unmarshal(raw, &health))
	require.Equal(t, "ok", health["status"])
}

func TestCreateThenGetReturnsRecord(t *testing.T) {
	app := newTestApp(t)

	resp, raw := doJSON(t, app, http.MethodPost, "/api/v1/forecast", validRecord())
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created forecast.Forecast
	require.NoError(t, json.Unmarshal(raw, &created))
	require.NotZero(t, created.ID)
	require.False(t, created.CreateDate.IsZero())

	resp, raw = doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/v1/forecast/%d", created.ID), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got forecast.Forecast
	require.NoError(t, json.Unmarshal(raw, &got))
	require.Equal(t, created.ID, got.ID)
	require.Equal(t, 21, *got.TemperatureMax)
	require.Equal(t, "partly cloudy", *got.Description)
}

func TestDeleteThenGetReturnsNotFound(t *testing.T) {
	app := newTestApp(t)

	_, raw := doJSON(t, app, http.MethodPost, "/api/v1/forecast", validRecord())
	var created forecast.Forecast
	require.NoError(t, json.Unmarshal(raw, &created))

	resp, raw := doJSON(t, app, http.MethodDelete, fmt.Sprintf("/api/v1/forecast/%d", created.ID), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var confirmation map[string]string
	require.NoError(t, json.Unmarshal(raw, &confirmation))
	require.Contains(t, confirmation["detail"], "deleted successfully")

	resp, _ = doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/v1/forecast/%d", created.ID), nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodDelete, fmt.Sprintf("/api/v1/forecast/%d", created.ID), nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestPatchUpdatesOnlySuppliedFields(t *testing.T) {
	app := newTestApp(t)

	_, raw := doJSON(t, app, http.MethodPost, "/api/v1/forecast", validRecord())
	var created forecast.Forecast
	require.NoError(t, json.Unmarshal(raw, &created))

	resp, raw := doJSON(t, app, http.MethodPatch, fmt.Sprintf("/api/v1/forecast/%d", created.ID), map[string]any{
		"temperature_max": 28,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var patched forecast.Forecast
	require.NoError(t, json.Unmarshal(raw, &patched))
	require.Equal(t, 28, *patched.TemperatureMax)
	require.Equal(t, 11, *patched.TemperatureMin)
	require.Equal(t, 40, *patched.HumidityMin)
	require.Equal(t, "partly cloudy", *patched.Description)
}

func TestPutReplacesAllFields(t *testing.T) {
	app := newTestApp(t)

	_, raw := doJSON(t, app, http.MethodPost, "/api/v1/forecast", validRecord())
	var created forecast.Forecast
	require.NoError(t, json.Unmarshal(raw, &created))

	resp, raw := doJSON(t, app, http.MethodPut, fmt.Sprintf("/api/v1/forecast/%d", created.ID), map[string]any{
		"collection_time": "2025-09-19T16:00:00Z",
		"forecast_date":   "2025-09-21T00:00:00Z",
		"temperature_max": 25,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var replaced forecast.Forecast
	require.NoError(t, json.Unmarshal(raw, &replaced))
	require.Equal(t, 25, *replaced.TemperatureMax)
	require.Nil(t, replaced.TemperatureMin)
	require.Nil(t, replaced.Description)
}

func TestValidationFailures(t *testing.T) {
	app := newTestApp(t)

	// Missing required collection_time / forecast_date.
	resp, _ := doJSON(t, app, http.MethodPost, "/api/v1/forecast", map[string]any{
		"temperature_max": 21,
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// Humidity out of range.
	rec := validRecord()
	rec["humidity_max"] = 140
	resp, _ = doJSON(t, app, http.MethodPost, "/api/v1/forecast", rec)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// Description over the 200-character column size.
	rec = validRecord()
	rec["description"] = strings.Repeat("x", 201)
	resp, _ = doJSON(t, app, http.MethodPost, "/api/v1/forecast", rec)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodPatch, "/api/v1/forecast/1", map[string]any{
		"description": strings.Repeat("x", 201),
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// Non-numeric id.
	resp, _ = doJSON(t, app, http.MethodGet, "/api/v1/forecast/abc", nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// Numeric ids that match nothing are lookups, not malformed requests.
	resp, _ = doJSON(t, app, http.MethodGet, "/api/v1/forecast/0", nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	// Pagination out of bounds.
	resp, _ = doJSON(t, app, http.MethodGet, "/api/v1/forecast?limit=500", nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp, _ = doJSON(t, app, http.MethodGet, "/api/v1/forecast?page=0", nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestListPagination(t *testing.T) {
	app := newTestApp(t)

	for i := 0; i < 3; i++ {
		rec := validRecord()
		rec["forecast_date"] = fmt.Sprintf("2025-09-2%dT00:00:00Z", i)
		resp, _ := doJSON(t, app, http.MethodPost, "/api/v1/forecast", rec)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	resp, raw := doJSON(t, app, http.MethodGet, "/api/v1/forecast?page=1&limit=2", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var page []forecast.Forecast
	require.NoError(t, json.Unmarshal(raw, &page))
	require.Len(t, page, 2)

	resp, raw = doJSON(t, app, http.MethodGet, "/api/v1/forecast?page=2&limit=2", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(raw, &page))
	require.Len(t, page, 1)
}

func TestLatestReturnsNewestBatch(t *testing.T) {
	app := newTestApp(t)

	// Older batch sent with a +05:00 offset: 12:00+05:00 is 07:00Z, hours
	// before the newer batch below.
	older := validRecord()
	older["collection_time"] = "2025-09-19T12:00:00+05:00"
	doJSON(t, app, http.MethodPost, "/api/v1/forecast", older)

	for _, date := range []string{"2025-09-21T00:00:00Z", "2025-09-20T00:00:00Z"} {
		rec := validRecord()
		rec["collection_time"] = "2025-09-19T10:00:00Z"
		rec["forecast_date"] = date
		doJSON(t, app, http.MethodPost, "/api/v1/forecast", rec)
	}

	resp, raw := doJSON(t, app, http.MethodGet, "/api/v1/forecast/latest", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var latest []forecast.Forecast
	require.NoError(t, json.Unmarshal(raw, &latest))
	require.Len(t, latest, 2)
	for _, rec := range latest {
		require.Equal(t, "2025-09-19T10:00:00Z", rec.CollectionTime.Format(time.RFC3339))
	}
	require.True(t, latest[0].ForecastDate.Before(latest[1].ForecastDate))
}

func TestLatestEmptyTable(t *testing.T) {
	app := newTestApp(t)

	resp, raw := doJSON(t, app, http.MethodGet, "/api/v1/forecast/latest", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.JSONEq(t, "[]", string(raw))
}
