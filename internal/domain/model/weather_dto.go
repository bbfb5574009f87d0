package model

import "time"

// CreateWeatherRecordInput is the canonical normalized weather reading
// handed to the store. Temperature and Condition are always set; the
// nullable measurements stay nil when the upstream payload omitted them.
type CreateWeatherRecordInput struct {
	WeatherSpotID   string
	Temperature     float64
	TemperatureUnit string
	Condition       string
	Humidity        *float64
	WindSpeed       *float64
	WindDirection   *float64
	Pressure        *float64
	RecordedAt      time.Time
}
