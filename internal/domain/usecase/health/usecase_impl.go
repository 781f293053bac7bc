package health

import (
	"weather-app/internal/domain/gateway/api"
	"weather-app/internal/domain/gateway/session"
	"weather-app/internal/domain/model"
)

type healthUseCase struct {
	sessionGateway session.SessionGateway
	weatherGateway api.WeatherGateway
}

func NewHealthUseCase(sessionGateway session.SessionGateway, weatherGateway api.WeatherGateway) UseCase {
	return &healthUseCase{
		sessionGateway: sessionGateway,
		weatherGateway: weatherGateway,
	}
}

func (useCase *healthUseCase) CheckHealth() model.HealthResponse {
	sessionHealth := useCase.sessionGateway.Health()
	providerHealth := useCase.providerHealth()

	overallStatus := model.StatusUp
	if sessionHealth.Status != model.StatusUp || providerHealth.Status != model.StatusUp {
		overallStatus = model.StatusDown
	}

	return model.HealthResponse{
		Status:       overallStatus,
		SessionStore: sessionHealth,
		Provider:     providerHealth,
	}
}

// providerHealth only checks the configuration; probing the provider would spend API quota
func (useCase *healthUseCase) providerHealth() model.ComponentHealthStatus {
	if !useCase.weatherGateway.Configured() {
		return model.ComponentHealthStatus{
			Status:  model.StatusDown,
			Details: map[string]string{"api_key": "missing"},
		}
	}
	return model.ComponentHealthStatus{
		Status:  model.StatusUp,
		Details: map[string]string{"api_key": "configured"},
	}
}
