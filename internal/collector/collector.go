package collector

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/i474232898/weather-forecast-api/internal/config"
	"github.com/i474232898/weather-forecast-api/internal/forecast"
)

// Collector fetches multi-day forecasts for the configured location and
// writes them to the weather_forecast table, one row per day, all stamped
// with a single collection time.
type Collector struct {
	log     *slog.Logger
	client  *OpenMeteoClient
	service *forecast.Service
	loc     config.CollectorLocation
	days    int
}

func New(log *slog.Logger, client *OpenMeteoClient, service *forecast.Service, loc config.CollectorLocation, days int) *Collector {
	return &Collector{
		log:     log.With("component", "collector"),
		client:  client,
		service: service,
		loc:     loc,
		days:    days,
	}
}

// Run performs one collection cycle. Failures are reported to the caller but
// never leave partially stamped timestamps: the whole batch shares one
// collection time.
func (c *Collector) Run(ctx context.Context) error {
	if c.loc.Lat == nil || c.loc.Lon == nil {
		return fmt.Errorf("collector location has no coordinates")
	}

	runID := uuid.NewString()
	log := c.log.With("run_id", runID, "location", c.loc.Name)

	collectedAt := time.Now().UTC()
	log.Info("collecting forecast", "days", c.days)

	daily, err := c.client.FetchDaily(ctx, *c.loc.Lat, *c.loc.Lon, c.days)
	if err != nil {
		log.Error("forecast fetch failed", "error", err)
		return err
	}
	if len(daily) == 0 {
		log.Warn("provider returned no forecast days")
		return nil
	}

	batch := make([]forecast.WriteInput, 0, len(daily))
	for _, d := range daily {
		batch = append(batch, forecast.WriteInput{
			ForecastDate:   d.Date,
			TemperatureMin: d.TemperatureMin,
			TemperatureMax: d.TemperatureMax,
			HumidityMin:    d.HumidityMin,
			HumidityMax:    d.HumidityMax,
			Description:    d.Description,
		})
	}

	if err := c.service.StoreBatch(ctx, collectedAt, batch); err != nil {
		log.Error("storing forecast batch failed", "error", err)
		return err
	}

	log.Info("forecast batch stored", "rows", len(batch), "collection_time", collectedAt)
	return nil
}
