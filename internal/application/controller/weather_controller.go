package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"weather-spots-api/internal/domain/usecase/weather"
	"weather-spots-api/pkg/util/numberutils"
)

const defaultHistoryDays = 7

type WeatherController struct {
	api     *echo.Group
	useCase weather.UseCase
}

func NewWeatherController(api *echo.Group, useCase weather.UseCase) *WeatherController {
	return &WeatherController{api: api, useCase: useCase}
}

// InitWeatherRoutes initializes weather routes
func (controller *WeatherController) InitWeatherRoutes() {
	controller.api.GET("/spots/:id/weather", controller.GetCurrentWeather)
	controller.api.POST("/spots/:id/weather", controller.RefreshWeather)
	controller.api.GET("/spots/:id/history", controller.GetWeatherHistory)
	controller.api.GET("/weather/batch", controller.BatchFetchWeather)
}

// GetCurrentWeather godoc
// @Summary Get current weather for a spot
// @Description Return the spot's cached record when fresh, otherwise fetch a new one from upstream
// @Tags weather
// @Accept json
// @Produce json
// @Param id path string true "Spot id"
// @Param refresh query bool false "Force an upstream fetch" default(false)
// @Success 200 {object} entity.WeatherRecord "Current weather record"
// @Failure 404 {object} map[string]string "Spot or weather not found"
// @Failure 429 {object} map[string]string "Upstream rate limit exceeded"
// @Router /spots/{id}/weather [get]
func (controller *WeatherController) GetCurrentWeather(c echo.Context) error {
	forceRefresh := c.QueryParam("refresh") == "true"

	record, err := controller.useCase.GetCurrentWeather(c.Param("id"), forceRefresh)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, record)
}

// RefreshWeather godoc
// @Summary Force-refresh weather for a spot
// @Description Fetch a new record from upstream regardless of cache freshness
// @Tags weather
// @Accept json
// @Produce json
// @Param id path string true "Spot id"
// @Success 200 {object} entity.WeatherRecord "Newly fetched weather record"
// @Failure 404 {object} map[string]string "Spot not found"
// @Failure 429 {object} map[string]string "Upstream rate limit exceeded"
// @Router /spots/{id}/weather [post]
func (controller *WeatherController) RefreshWeather(c echo.Context) error {
	record, err := controller.useCase.GetCurrentWeather(c.Param("id"), true)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, record)
}

// GetWeatherHistory godoc
// @Summary Get weather history for a spot
// @Description Return the spot's records of the last N days, oldest first
// @Tags weather
// @Accept json
// @Produce json
// @Param id path string true "Spot id"
// @Param days query int false "History window in days (1-30)" default(7)
// @Success 200 {array} entity.WeatherRecord "Time-ordered weather records"
// @Failure 400 {object} map[string]string "Days out of range"
// @Failure 404 {object} map[string]string "Spot not found"
// @Router /spots/{id}/history [get]
func (controller *WeatherController) GetWeatherHistory(c echo.Context) error {
	days := numberutils.ToIntWithDefault(c.QueryParam("days"), defaultHistoryDays)

	records, err := controller.useCase.GetWeatherHistory(c.Param("id"), days)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, records)
}

// BatchFetchWeather godoc
// @Summary Fetch weather for every spot
// @Description Run the fetch-or-cache decision for all spots concurrently; failed spots map to null
// @Tags weather
// @Accept json
// @Produce json
// @Param refresh query bool false "Force upstream fetches" default(false)
// @Success 200 {object} map[string]entity.WeatherRecord "Mapping from spot id to record or null"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /weather/batch [get]
func (controller *WeatherController) BatchFetchWeather(c echo.Context) error {
	forceRefresh := c.QueryParam("refresh") == "true"

	results, err := controller.useCase.BatchFetchWeather(forceRefresh)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, results)
}
