package forecast

import (
	"time"
)

// Forecast is a single row of the weather_forecast table: one forecasted day
// produced by one collection run. Rows sharing a CollectionTime form a batch.
type Forecast struct {
	ID             uint      `json:"id" gorm:"primaryKey" example:"1"`
	CollectionTime time.Time `json:"collection_time" gorm:"index;not null" example:"2025-09-19T10:00:00Z"`
	ForecastDate   time.Time `json:"forecast_date" gorm:"not null" example:"2025-09-20T00:00:00Z"`
	TemperatureMin *int      `json:"temperature_min" example:"11"`
	TemperatureMax *int      `json:"temperature_max" example:"21"`
	HumidityMin    *int      `json:"humidity_min" example:"40"`
	HumidityMax    *int      `json:"humidity_max" example:"85"`
	Description    *string   `json:"description" gorm:"size:200" example:"partly cloudy"`
	CreateDate     time.Time `json:"create_date"`
	UpdateDate     time.Time `json:"update_date"`
}

// TableName pins the table the API exposes.
func (Forecast) TableName() string {
	return "weather_forecast"
}

// WriteInput carries the client-settable fields for POST and PUT.
// CreateDate and UpdateDate are stamped server-side and never accepted here.
type WriteInput struct {
	CollectionTime time.Time `json:"collection_time" validate:"required" example:"2025-09-19T10:00:00Z"`
	ForecastDate   time.Time `json:"forecast_date" validate:"required" example:"2025-09-20T00:00:00Z"`
	TemperatureMin *int      `json:"temperature_min" example:"11"`
	TemperatureMax *int      `json:"temperature_max" example:"21"`
	HumidityMin    *int      `json:"humidity_min" validate:"omitempty,min=0,max=100" example:"40"`
	HumidityMax    *int      `json:"humidity_max" validate:"omitempty,min=0,max=100" example:"85"`
	Description    *string   `json:"description" validate:"omitempty,max=200" example:"partly cloudy"`
}

// PatchInput carries an arbitrary subset of the client-settable fields.
// A nil pointer means the field was absent from the request and must keep
// its stored value.
type PatchInput struct {
	CollectionTime *time.Time `json:"collection_time"`
	ForecastDate   *time.Time `json:"forecast_date"`
	TemperatureMin *int       `json:"temperature_min"`
	TemperatureMax *int       `json:"temperature_max"`
	HumidityMin    *int       `json:"humidity_min" validate:"omitempty,min=0,max=100"`
	HumidityMax    *int       `json:"humidity_max" validate:"omitempty,min=0,max=100"`
	Description    *string    `json:"description" validate:"omitempty,max=200"`
}

// apply overlays the supplied fields onto an existing record. Times are
// normalized to UTC like on create.
func (p PatchInput) apply(f *Forecast) {
	if p.CollectionTime != nil {
		f.CollectionTime = p.CollectionTime.UTC()
	}
	if p.ForecastDate != nil {
		f.ForecastDate = p.ForecastDate.UTC()
	}
	if p.TemperatureMin != nil {
		f.TemperatureMin = p.TemperatureMin
	}
	if p.TemperatureMax != nil {
		f.TemperatureMax = p.TemperatureMax
	}
	if p.HumidityMin != nil {
		f.HumidityMin = p.HumidityMin
	}
	if p.HumidityMax != nil {
		f.HumidityMax = p.HumidityMax
	}
	if p.Description != nil {
		f.Description = p.Description
	}
}
