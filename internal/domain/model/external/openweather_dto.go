package external

import "encoding/json"

// GeocodingResult represents one entry of the geocoding API response,
// in the provider's relevance order. Never persisted.
type GeocodingResult struct {
	Name       string            `json:"name"`
	LocalNames map[string]string `json:"local_names,omitempty"`
	Lat        float64           `json:"lat"`
	Lon        float64           `json:"lon"`
	Country    string            `json:"country"`
	State      string            `json:"state,omitempty"`
}

// WeatherDescription is one entry of the weather condition list, shared by
// both current-weather payload shapes.
type WeatherDescription struct {
	ID          int    `json:"id"`
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// OneCallResponse represents the one-call API payload with the forecast
// blocks excluded from the request.
type OneCallResponse struct {
	Lat            float64           `json:"lat"`
	Lon            float64           `json:"lon"`
	Timezone       string            `json:"timezone"`
	TimezoneOffset int               `json:"timezone_offset"`
	Current        CurrentConditions `json:"current"`
}

// CurrentConditions holds the current-conditions block of the one-call
// payload. Only dt, temp and the weather list are guaranteed by the
// provider; everything else is optional.
type CurrentConditions struct {
	Dt         int64                `json:"dt"`
	Sunrise    *int64               `json:"sunrise,omitempty"`
	Sunset     *int64               `json:"sunset,omitempty"`
	Temp       float64              `json:"temp"`
	FeelsLike  *float64             `json:"feels_like,omitempty"`
	Pressure   *float64             `json:"pressure,omitempty"`
	Humidity   *float64             `json:"humidity,omitempty"`
	DewPoint   *float64             `json:"dew_point,omitempty"`
	UVIndex    *float64             `json:"uvi,omitempty"`
	Clouds     *float64             `json:"clouds,omitempty"`
	Visibility *float64             `json:"visibility,omitempty"`
	WindSpeed  *float64             `json:"wind_speed,omitempty"`
	WindDeg    *float64             `json:"wind_deg,omitempty"`
	WindGust   *float64             `json:"wind_gust,omitempty"`
	Weather    []WeatherDescription `json:"weather"`
}

// CurrentWeatherResponse represents the legacy current-weather payload used
// as fallback when the one-call tier is unavailable to the credential.
type CurrentWeatherResponse struct {
	Coord   CurrentWeatherCoord  `json:"coord"`
	Weather []WeatherDescription `json:"weather"`
	Main    CurrentWeatherMain   `json:"main"`
	Wind    *CurrentWeatherWind  `json:"wind,omitempty"`
	Dt      int64                `json:"dt"`
	Sys     *CurrentWeatherSys   `json:"sys,omitempty"`
	Name    string               `json:"name"`
}

type CurrentWeatherCoord struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type CurrentWeatherMain struct {
	Temp      float64  `json:"temp"`
	FeelsLike *float64 `json:"feels_like,omitempty"`
	Pressure  *float64 `json:"pressure,omitempty"`
	Humidity  *float64 `json:"humidity,omitempty"`
}

type CurrentWeatherWind struct {
	Speed *float64 `json:"speed,omitempty"`
	Deg   *float64 `json:"deg,omitempty"`
}

type CurrentWeatherSys struct {
	Sunrise *int64 `json:"sunrise,omitempty"`
	Sunset  *int64 `json:"sunset,omitempty"`
}

// PayloadShape discriminates the WeatherPayload variants.
type PayloadShape string

const (
	ShapeOneCall        PayloadShape = "one_call"
	ShapeCurrentWeather PayloadShape = "current_weather"
)

// WeatherPayload is the tagged union the gateway hands to the normalizer.
// Exactly one variant pointer is set, named by Shape; a new provider shape
// is a new variant plus its mapping, not structural sniffing.
type WeatherPayload struct {
	Shape   PayloadShape
	OneCall *OneCallResponse
	Current *CurrentWeatherResponse
}

// APIErrorResponse represents the provider error body. Cod arrives as a
// number or a string depending on the endpoint.
type APIErrorResponse struct {
	Cod     json.Number `json:"cod"`
	Message string      `json:"message"`
}
