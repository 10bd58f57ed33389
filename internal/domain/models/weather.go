package models

import (
	"slices"
	"time"
)

// Temperature is a reading in degrees Fahrenheit. Current is zero for
// forecast days.
type Temperature struct {
	Current int `json:"current,omitempty"`
	High    int `json:"high"`
	Low     int `json:"low"`
}

// CurrentWeather describes conditions right now.
type CurrentWeather struct {
	Condition   string      `json:"condition"`
	Temperature Temperature `json:"temperature"`
	Humidity    int         `json:"humidity"`
	WindSpeed   int         `json:"windSpeed"`
	UVIndex     int         `json:"uvIndex"`
}

// ForecastDay is one day of the daily forecast.
type ForecastDay struct {
	Date        time.Time   `json:"date"`
	Condition   string      `json:"condition"`
	Temperature Temperature `json:"temperature"`
	Rainfall    float64     `json:"rainfall"` // inches
}

// WeatherAlert is an active weather advisory.
type WeatherAlert struct {
	Type       string    `json:"type"`
	Severity   string    `json:"severity"`
	Message    string    `json:"message"`
	ValidUntil time.Time `json:"validUntil"`
}

// WeatherSnapshot bundles the static weather data.
type WeatherSnapshot struct {
	Current  CurrentWeather `json:"current"`
	Forecast []ForecastDay  `json:"forecast"`
	Alerts   []WeatherAlert `json:"alerts"`
}

// Clone returns an independent copy of the snapshot.
func (w WeatherSnapshot) Clone() WeatherSnapshot {
	w.Forecast = slices.Clone(w.Forecast)
	w.Alerts = slices.Clone(w.Alerts)
	return w
}
