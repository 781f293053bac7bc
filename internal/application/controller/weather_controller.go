package controller

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"weather-app/internal/domain/gateway/api"
	"weather-app/internal/domain/model"
	"weather-app/internal/domain/usecase/weather"
	"weather-app/pkg/msg"
)

type WeatherController struct {
	api     *echo.Group
	useCase weather.UseCase
}

func NewWeatherController(api *echo.Group, useCase weather.UseCase) *WeatherController {
	return &WeatherController{api: api, useCase: useCase}
}

// InitWeatherRoutes initializes the JSON weather routes
func (controller *WeatherController) InitWeatherRoutes() {
	controller.api.GET("/suggestions", controller.FindSuggestions)
	controller.api.GET("/weather", controller.FindWeather)
}

// FindSuggestions godoc
// @Summary Location suggestions
// @Description Return up to five geocoding matches for a partial location name. Provider failures yield an empty list.
// @Tags weather
// @Produce json
// @Param q query string false "Partial location name"
// @Success 200 {array} model.SuggestionDTO "Matching locations"
// @Router /api/v1/suggestions [get]
func (controller *WeatherController) FindSuggestions(c echo.Context) error {
	query := c.QueryParam("q")
	suggestions := controller.useCase.Suggest(c.Request().Context(), query)
	return c.JSON(http.StatusOK, model.NewSuggestionDTOs(suggestions))
}

// FindWeather godoc
// @Summary Current weather and 3-day outlook
// @Description Return the current weather and the midday forecast of the next three days for a location
// @Tags weather
// @Produce json
// @Param location query string true "Location name, e.g. \"London, England, GB\""
// @Success 200 {object} model.WeatherDTO "Weather for the location"
// @Failure 400 {object} model.ErrorDTO "Missing location"
// @Failure 404 {object} model.ErrorDTO "Location not found"
// @Failure 502 {object} model.ErrorDTO "Weather service unreachable"
// @Router /api/v1/weather [get]
func (controller *WeatherController) FindWeather(c echo.Context) error {
	location := c.QueryParam("location")

	result, err := controller.useCase.Lookup(c.Request().Context(), location)
	switch {
	case err == nil:
		return c.JSON(http.StatusOK, result)
	case errors.Is(err, weather.ErrEmptyLocation):
		return c.JSON(http.StatusBadRequest, model.ErrorDTO{Error: err.Error()})
	case errors.Is(err, api.ErrNetwork):
		return c.JSON(http.StatusBadGateway, model.ErrorDTO{Error: msg.GetMessage("alert.network-error")})
	case errors.Is(err, api.ErrLocationNotFound):
		return c.JSON(http.StatusNotFound, model.ErrorDTO{Error: msg.GetMessage("alert.location-not-found")})
	default:
		return c.JSON(http.StatusInternalServerError, model.ErrorDTO{Error: err.Error()})
	}
}
