package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"weather-spots-api/internal/domain/usecase/spot"
	"weather-spots-api/pkg/util/numberutils"
)

type GeocodingController struct {
	api     *echo.Group
	useCase spot.UseCase
}

func NewGeocodingController(api *echo.Group, useCase spot.UseCase) *GeocodingController {
	return &GeocodingController{api: api, useCase: useCase}
}

// InitGeocodingRoutes initializes geocoding routes
func (controller *GeocodingController) InitGeocodingRoutes() {
	controller.api.GET("/geocoding/search", controller.SearchCities)
}

// SearchCities godoc
// @Summary Search cities
// @Description Resolve a free-text city query to coordinate candidates
// @Tags geocoding
// @Accept json
// @Produce json
// @Param q query string true "City name query"
// @Param country query string false "Two-letter country code filter"
// @Param limit query int false "Maximum number of results" default(5)
// @Success 200 {array} external.GeocodingResult "Geocoding candidates in relevance order"
// @Failure 400 {object} map[string]string "Missing query"
// @Router /geocoding/search [get]
func (controller *GeocodingController) SearchCities(c echo.Context) error {
	query := c.QueryParam("q")
	countryCode := c.QueryParam("country")
	limit := numberutils.ToIntWithDefault(c.QueryParam("limit"), 0)

	results, err := controller.useCase.SearchCities(query, countryCode, limit)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, results)
}
