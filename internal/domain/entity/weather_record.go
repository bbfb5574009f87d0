package entity

import "time"

// Temperature unit tags stored with every record.
const (
	UnitCelsius    = "C"
	UnitFahrenheit = "F"
)

// WeatherRecord is one immutable weather reading for a spot. RecordedAt is
// the upstream observation time, CreatedAt the insertion time; "current
// weather" for a spot is the record with the greatest RecordedAt.
type WeatherRecord struct {
	ID              string    `json:"id" gorm:"primaryKey;type:uuid"`
	WeatherSpotID   string    `json:"weather_spot_id" gorm:"type:uuid;not null;index"`
	Temperature     float64   `json:"temperature" gorm:"not null"`
	TemperatureUnit string    `json:"temperature_unit" gorm:"type:char(1);not null"`
	Condition       string    `json:"condition" gorm:"not null"`
	Humidity        *float64  `json:"humidity"`
	WindSpeed       *float64  `json:"wind_speed"`
	WindDirection   *float64  `json:"wind_direction"`
	Pressure        *float64  `json:"pressure"`
	RecordedAt      time.Time `json:"recorded_at" gorm:"not null;index:idx_weather_records_spot_recorded"`
	CreatedAt       time.Time `json:"created_at"`
}

// TableName overrides the gorm table name
func (WeatherRecord) TableName() string {
	return "weather_records"
}
