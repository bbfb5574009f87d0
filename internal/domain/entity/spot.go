package entity

import "time"

// Spot is a tracked geographic location. Spots are created from raw
// coordinates or by geocoding a city name.
type Spot struct {
	ID          string    `json:"id" gorm:"primaryKey;type:uuid"`
	CityName    string    `json:"city_name" gorm:"not null"`
	CountryCode *string   `json:"country_code" gorm:"type:char(2)"`
	Latitude    float64   `json:"latitude" gorm:"not null"`
	Longitude   float64   `json:"longitude" gorm:"not null"`
	IsFavorite  bool      `json:"is_favorite" gorm:"not null;default:false"`
	Notes       *string   `json:"notes"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName overrides the gorm table name
func (Spot) TableName() string {
	return "weather_spots"
}

// SpotWithWeather pairs a spot with its most recent weather record, when any
// exists.
type SpotWithWeather struct {
	Spot
	CurrentWeather *WeatherRecord `json:"current_weather"`
}
