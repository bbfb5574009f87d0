package middleware

import (
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// RequestValidator wires go-playground/validator as echo's request validator.
type RequestValidator struct {
	validate *validator.Validate
}

// SetupValidator registers the request validator on the echo instance.
func SetupValidator(e *echo.Echo) {
	e.Validator = &RequestValidator{validate: validator.New()}
}

func (rv *RequestValidator) Validate(i any) error {
	return rv.validate.Struct(i)
}
