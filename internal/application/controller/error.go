package controller

import (
	"github.com/labstack/echo/v4"

	"weather-spots-api/internal/domain/model"
)

// errorResponse maps a classified error onto its HTTP status with the
// standard {"error": ...} body.
func errorResponse(c echo.Context, err error) error {
	return c.JSON(model.HTTPStatus(err), map[string]string{"error": err.Error()})
}
