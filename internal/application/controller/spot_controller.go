package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"weather-spots-api/internal/domain/model"
	"weather-spots-api/internal/domain/usecase/spot"
)

type SpotController struct {
	api     *echo.Group
	useCase spot.UseCase
}

func NewSpotController(api *echo.Group, useCase spot.UseCase) *SpotController {
	return &SpotController{api: api, useCase: useCase}
}

// InitSpotRoutes initializes spot routes
func (controller *SpotController) InitSpotRoutes() {
	controller.api.GET("/spots", controller.FindAllSpots)
	controller.api.GET("/spots/:id", controller.FindSpotByID)
	controller.api.POST("/spots", controller.CreateSpot)
	controller.api.POST("/spots/from-city", controller.CreateSpotFromCity)
	controller.api.PATCH("/spots/:id", controller.UpdateSpot)
	controller.api.DELETE("/spots/:id", controller.DeleteSpot)
}

// FindAllSpots godoc
// @Summary Get all spots
// @Description Retrieve every tracked spot with its most recent weather record
// @Tags spots
// @Accept json
// @Produce json
// @Success 200 {array} entity.SpotWithWeather "List of spots with current weather"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /spots [get]
func (controller *SpotController) FindAllSpots(c echo.Context) error {
	spots, err := controller.useCase.FindAllWithWeather()
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, spots)
}

// FindSpotByID godoc
// @Summary Get spot by id
// @Description Find a single spot by its id
// @Tags spots
// @Accept json
// @Produce json
// @Param id path string true "Spot id"
// @Success 200 {object} entity.Spot "Spot data"
// @Failure 404 {object} map[string]string "Spot not found"
// @Router /spots/{id} [get]
func (controller *SpotController) FindSpotByID(c echo.Context) error {
	found, err := controller.useCase.FindByID(c.Param("id"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, found)
}

// CreateSpot godoc
// @Summary Create spot
// @Description Create a spot from raw coordinates; its first weather record is fetched in the background
// @Tags spots
// @Accept json
// @Produce json
// @Param spot body model.CreateSpotDTO true "Spot data"
// @Success 201 {object} entity.Spot "Created spot"
// @Failure 400 {object} map[string]string "Invalid request body or coordinates out of range"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /spots [post]
func (controller *SpotController) CreateSpot(c echo.Context) error {
	var dto model.CreateSpotDTO
	if err := c.Bind(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if err := c.Validate(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	created, err := controller.useCase.Create(dto)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusCreated, created)
}

// CreateSpotFromCity godoc
// @Summary Create spot from city name
// @Description Geocode a city name and create a spot from the best match
// @Tags spots
// @Accept json
// @Produce json
// @Param spot body model.CreateSpotFromCityDTO true "City data"
// @Success 201 {object} entity.Spot "Created spot"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 404 {object} map[string]string "City not found"
// @Router /spots/from-city [post]
func (controller *SpotController) CreateSpotFromCity(c echo.Context) error {
	var dto model.CreateSpotFromCityDTO
	if err := c.Bind(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if err := c.Validate(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	created, err := controller.useCase.CreateFromCity(dto)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusCreated, created)
}

// UpdateSpot godoc
// @Summary Update spot
// @Description Partially update a spot; coordinates cannot be changed
// @Tags spots
// @Accept json
// @Produce json
// @Param id path string true "Spot id"
// @Param spot body model.UpdateSpotDTO true "Fields to update"
// @Success 200 {object} entity.Spot "Updated spot"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 404 {object} map[string]string "Spot not found"
// @Router /spots/{id} [patch]
func (controller *SpotController) UpdateSpot(c echo.Context) error {
	var dto model.UpdateSpotDTO
	if err := c.Bind(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if err := c.Validate(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	updated, err := controller.useCase.Update(c.Param("id"), dto)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, updated)
}

// DeleteSpot godoc
// @Summary Delete spot
// @Description Remove a spot and all its weather records
// @Tags spots
// @Accept json
// @Produce json
// @Param id path string true "Spot id"
// @Success 204 "Spot removed successfully"
// @Failure 404 {object} map[string]string "Spot not found"
// @Router /spots/{id} [delete]
func (controller *SpotController) DeleteSpot(c echo.Context) error {
	if err := controller.useCase.Delete(c.Param("id")); err != nil {
		return errorResponse(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
