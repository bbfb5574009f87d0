package weather

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"weather-spots-api/internal/domain/gateway/api"
	"weather-spots-api/internal/domain/model/external"
)

func floatPtr(v float64) *float64 { return &v }

func TestNormalizeOneCallPayload(t *testing.T) {
	dt := int64(1700000000)
	payload := &external.WeatherPayload{
		Shape: external.ShapeOneCall,
		OneCall: &external.OneCallResponse{
			Current: external.CurrentConditions{
				Dt:        dt,
				Temp:      18.4,
				Humidity:  floatPtr(65),
				Pressure:  floatPtr(1013),
				WindSpeed: floatPtr(4.2),
				WindDeg:   floatPtr(180),
				Weather: []external.WeatherDescription{
					{Main: "Clouds", Description: "scattered clouds"},
				},
			},
		},
	}

	input := NormalizeWeatherPayload("spot-1", payload, api.UnitsMetric)

	assert.Equal(t, "spot-1", input.WeatherSpotID)
	assert.Equal(t, 18.4, input.Temperature)
	assert.Equal(t, "C", input.TemperatureUnit)
	assert.Equal(t, "Clouds", input.Condition)
	assert.Equal(t, 65.0, *input.Humidity)
	assert.Equal(t, 1013.0, *input.Pressure)
	assert.Equal(t, 4.2, *input.WindSpeed)
	assert.Equal(t, 180.0, *input.WindDirection)
	assert.Equal(t, time.Unix(dt, 0).UTC(), input.RecordedAt)
}

func TestNormalizeCurrentWeatherPayload(t *testing.T) {
	dt := int64(1700000000)
	payload := &external.WeatherPayload{
		Shape: external.ShapeCurrentWeather,
		Current: &external.CurrentWeatherResponse{
			Dt: dt,
			Main: external.CurrentWeatherMain{
				Temp:     21.0,
				Humidity: floatPtr(70),
			},
			Wind: &external.CurrentWeatherWind{
				Speed: floatPtr(3.1),
				Deg:   floatPtr(90),
			},
			Weather: []external.WeatherDescription{{Main: "Rain"}},
		},
	}

	input := NormalizeWeatherPayload("spot-2", payload, api.UnitsMetric)

	assert.Equal(t, 21.0, input.Temperature)
	assert.Equal(t, "Rain", input.Condition)
	assert.Equal(t, 70.0, *input.Humidity)
	assert.Nil(t, input.Pressure)
	assert.Equal(t, 3.1, *input.WindSpeed)
	assert.Equal(t, 90.0, *input.WindDirection)
	assert.Equal(t, time.Unix(dt, 0).UTC(), input.RecordedAt)
}

func TestNormalizeDefaultsConditionToUnknown(t *testing.T) {
	payload := &external.WeatherPayload{
		Shape: external.ShapeOneCall,
		OneCall: &external.OneCallResponse{
			Current: external.CurrentConditions{Dt: 1700000000, Temp: 10},
		},
	}

	input := NormalizeWeatherPayload("spot-3", payload, api.UnitsMetric)
	assert.Equal(t, "Unknown", input.Condition)

	payload.OneCall.Current.Weather = []external.WeatherDescription{{Main: ""}}
	input = NormalizeWeatherPayload("spot-3", payload, api.UnitsMetric)
	assert.Equal(t, "Unknown", input.Condition)
}

func TestNormalizeMissingMeasurementsStayNil(t *testing.T) {
	payload := &external.WeatherPayload{
		Shape: external.ShapeCurrentWeather,
		Current: &external.CurrentWeatherResponse{
			Dt:   1700000000,
			Main: external.CurrentWeatherMain{Temp: 5},
		},
	}

	input := NormalizeWeatherPayload("spot-4", payload, api.UnitsMetric)

	assert.Nil(t, input.Humidity)
	assert.Nil(t, input.WindSpeed)
	assert.Nil(t, input.WindDirection)
	assert.Nil(t, input.Pressure)
}

func TestNormalizeImperialUnitsTagFahrenheit(t *testing.T) {
	payload := &external.WeatherPayload{
		Shape: external.ShapeOneCall,
		OneCall: &external.OneCallResponse{
			Current: external.CurrentConditions{Dt: 1700000000, Temp: 72},
		},
	}

	input := NormalizeWeatherPayload("spot-5", payload, api.UnitsImperial)
	assert.Equal(t, "F", input.TemperatureUnit)
}

func TestNormalizeIsTotalOverEmptyVariants(t *testing.T) {
	before := time.Now().UTC()

	for _, payload := range []*external.WeatherPayload{
		{Shape: external.ShapeOneCall},
		{Shape: external.ShapeCurrentWeather},
		{Shape: external.PayloadShape("unexpected")},
	} {
		input := NormalizeWeatherPayload("spot-6", payload, api.UnitsMetric)
		assert.Equal(t, "Unknown", input.Condition)
		assert.Equal(t, "spot-6", input.WeatherSpotID)
		assert.False(t, input.RecordedAt.Before(before))
	}
}

func TestNormalizeZeroDtFallsBackToNow(t *testing.T) {
	before := time.Now().UTC()
	payload := &external.WeatherPayload{
		Shape: external.ShapeOneCall,
		OneCall: &external.OneCallResponse{
			Current: external.CurrentConditions{Temp: 1},
		},
	}

	input := NormalizeWeatherPayload("spot-7", payload, api.UnitsMetric)
	assert.False(t, input.RecordedAt.Before(before))
}
