package health

import "weather-spots-api/internal/domain/model"

type UseCase interface {
	// CheckHealth aggregates the health of the application components
	CheckHealth() model.HealthResponse
}
