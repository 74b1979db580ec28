package collector

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const openMeteoBaseURL = "https://api.open-meteo.com/v1/forecast"

// DailyForecast is one day of provider output, already normalized to the
// shape the weather_forecast table stores.
type DailyForecast struct {
	Date           time.Time
	TemperatureMin *int
	TemperatureMax *int
	HumidityMin    *int
	HumidityMax    *int
	Description    *string
}

// OpenMeteoClient fetches multi-day forecasts from Open-Meteo. The daily
// endpoint needs no API key.
type OpenMeteoClient struct {
	baseURL string
	rc      *resilientClient
}

func NewOpenMeteoClient(client *http.Client) *OpenMeteoClient {
	return &OpenMeteoClient{
		baseURL: openMeteoBaseURL,
		rc:      newResilientClient(client, "openmeteo"),
	}
}

type openMeteoDaily struct {
	Time        []string  `json:"time"`
	TempMax     []float64 `json:"temperature_2m_max"`
	TempMin     []float64 `json:"temperature_2m_min"`
	HumidityMax []float64 `json:"relative_humidity_2m_max"`
	HumidityMin []float64 `json:"relative_humidity_2m_min"`
	WeatherCode []int     `json:"weather_code"`
}

type openMeteoResponse struct {
	Daily openMeteoDaily `json:"daily"`
}

// FetchDaily returns up to days entries of daily forecast for the given
// coordinates, ordered by date.
func (c *OpenMeteoClient) FetchDaily(ctx context.Context, lat, lon float64, days int) ([]DailyForecast, error) {
	buildRequest := func() (*http.Request, error) {
		values := url.Values{}
		values.Set("latitude", fmt.Sprintf("%f", lat))
		values.Set("longitude", fmt.Sprintf("%f", lon))
		values.Set("daily", "temperature_2m_max,temperature_2m_min,relative_humidity_2m_max,relative_humidity_2m_min,weather_code")
		values.Set("forecast_days", strconv.Itoa(days))
		values.Set("timezone", "UTC")

		endpoint := c.baseURL + "?" + values.Encode()
		return http.NewRequest(http.MethodGet, endpoint, nil)
	}

	resp, err := c.rc.do(ctx, buildRequest)
	if err != nil {
		return nil, fmt.Errorf("openmeteo request failed: %w", err)
	}
	defer resp.Body.Close()

	var payload openMeteoResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode openmeteo response: %w", err)
	}

	out := make([]DailyForecast, 0, len(payload.Daily.Time))
	for i, dateStr := range payload.Daily.Time {
		date, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return nil, fmt.Errorf("parse forecast date %q: %w", dateStr, err)
		}

		d := DailyForecast{Date: date.UTC()}
		if i < len(payload.Daily.TempMin) {
			d.TemperatureMin = roundToInt(payload.Daily.TempMin[i])
		}
		if i < len(payload.Daily.TempMax) {
			d.TemperatureMax = roundToInt(payload.Daily.TempMax[i])
		}
		if i < len(payload.Daily.HumidityMin) {
			d.HumidityMin = roundToInt(payload.Daily.HumidityMin[i])
		}
		if i < len(payload.Daily.HumidityMax) {
			d.HumidityMax = roundToInt(payload.Daily.HumidityMax[i])
		}
		if i < len(payload.Daily.WeatherCode) {
			desc := describeWeatherCode(payload.Daily.WeatherCode[i])
			d.Description = &desc
		}
		out = append(out, d)
	}

	return out, nil
}

func roundToInt(f float64) *int {
	n := int(f + 0.5)
	if f < 0 {
		n = int(f - 0.5)
	}
	return &n
}

// describeWeatherCode maps WMO weather interpretation codes to short text.
func describeWeatherCode(code int) string {
	switch {
	case code == 0:
		return "clear sky"
	case code >= 1 && code <= 3:
		return "partly cloudy"
	case code == 45 || code == 48:
		return "fog"
	case code >= 51 && code <= 57:
		return "drizzle"
	case code >= 61 && code <= 67:
		return "rain"
	case code >= 71 && code <= 77:
		return "snow"
	case code >= 80 && code <= 82:
		return "rain showers"
	case code == 85 || code == 86:
		return "snow showers"
	case code >= 95:
		return "thunderstorm"
	default:
		return "unknown"
	}
}
