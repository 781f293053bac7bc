package health

import "weather-app/internal/domain/model"

type UseCase interface {
	CheckHealth() model.HealthResponse
}
