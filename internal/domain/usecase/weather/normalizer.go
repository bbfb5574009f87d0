package weather

import (
	"time"

	"weather-spots-api/internal/domain/entity"
	"weather-spots-api/internal/domain/gateway/api"
	"weather-spots-api/internal/domain/model"
	"weather-spots-api/internal/domain/model/external"
)

// Condition used when the upstream payload carries no weather description.
const unknownCondition = "Unknown"

// NormalizeWeatherPayload maps any upstream payload shape to the canonical
// record input. It is total: it never fails, missing optional measurements
// stay nil and a missing condition becomes "Unknown".
func NormalizeWeatherPayload(spotID string, payload *external.WeatherPayload, units string) model.CreateWeatherRecordInput {
	input := model.CreateWeatherRecordInput{
		WeatherSpotID:   spotID,
		TemperatureUnit: temperatureUnit(units),
		Condition:       unknownCondition,
		RecordedAt:      time.Now().UTC(),
	}

	switch payload.Shape {
	case external.ShapeOneCall:
		if payload.OneCall == nil {
			return input
		}
		current := payload.OneCall.Current
		input.Temperature = current.Temp
		input.Condition = conditionOf(current.Weather)
		input.Humidity = current.Humidity
		input.WindSpeed = current.WindSpeed
		input.WindDirection = current.WindDeg
		input.Pressure = current.Pressure
		input.RecordedAt = observationTime(current.Dt)

	case external.ShapeCurrentWeather:
		if payload.Current == nil {
			return input
		}
		current := payload.Current
		input.Temperature = current.Main.Temp
		input.Condition = conditionOf(current.Weather)
		input.Humidity = current.Main.Humidity
		input.Pressure = current.Main.Pressure
		if current.Wind != nil {
			input.WindSpeed = current.Wind.Speed
			input.WindDirection = current.Wind.Deg
		}
		input.RecordedAt = observationTime(current.Dt)
	}

	return input
}

// conditionOf takes the main label of the first weather description.
func conditionOf(descriptions []external.WeatherDescription) string {
	if len(descriptions) == 0 || descriptions[0].Main == "" {
		return unknownCondition
	}
	return descriptions[0].Main
}

// observationTime converts the upstream epoch-seconds timestamp, keeping the
// normalization time when the payload omitted it.
func observationTime(dt int64) time.Time {
	if dt == 0 {
		return time.Now().UTC()
	}
	return time.Unix(dt, 0).UTC()
}

func temperatureUnit(units string) string {
	if units == api.UnitsImperial {
		return entity.UnitFahrenheit
	}
	return entity.UnitCelsius
}
