package controller

import (
	"bytes"
	"net/http"

	"github.com/labstack/echo/v4"

	"weather-app/internal/application/middleware"
	"weather-app/internal/application/view"
	"weather-app/internal/domain/entity"
	"weather-app/internal/domain/usecase/weather"
	"weather-app/pkg/log"
	"weather-app/pkg/util/numberutils"
)

// PageController serves the search page and the form posts it makes
type PageController struct {
	page     *echo.Group
	useCase  weather.UseCase
	view     *view.View
	basePath string
}

func NewPageController(page *echo.Group, useCase weather.UseCase, view *view.View, basePath string) *PageController {
	return &PageController{page: page, useCase: useCase, view: view, basePath: basePath}
}

// InitPageRoutes initializes page routes
func (controller *PageController) InitPageRoutes() {
	controller.page.GET("", controller.Index)
	controller.page.GET("/", controller.Index)
	controller.page.POST("", controller.Submit)
	controller.page.POST("/", controller.Submit)
	controller.page.GET("/suggestions", controller.Suggestions)
	controller.page.POST("/suggestions/select", controller.SelectSuggestion)
	controller.page.POST("/alert/dismiss", controller.DismissAlert)
}

// Index renders the page. A pending alert is shown once and then cleared.
func (controller *PageController) Index(c echo.Context) error {
	ctx := c.Request().Context()
	sessionID := middleware.SessionID(c)

	state, err := controller.useCase.State(ctx, sessionID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	var buf bytes.Buffer
	if err := controller.view.Render(&buf, state); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	if state.Alert != entity.AlertNone {
		if _, err := controller.useCase.DismissAlert(ctx, sessionID); err != nil {
			log.Warnf("Failed to clear shown alert for session %s: %v", sessionID, err)
		}
	}

	c.Response().Header().Set(echo.HeaderCacheControl, "no-store")
	return c.HTMLBlob(http.StatusOK, buf.Bytes())
}

// Submit searches for the posted location and redirects back to the page
func (controller *PageController) Submit(c echo.Context) error {
	location := c.FormValue("location")

	if _, err := controller.useCase.Submit(c.Request().Context(), middleware.SessionID(c), location); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return controller.redirectToPage(c)
}

// Suggestions answers a keystroke with the dropdown fragment
func (controller *PageController) Suggestions(c echo.Context) error {
	query := c.QueryParam("q")

	state, seq, err := controller.useCase.ChangeInput(c.Request().Context(), middleware.SessionID(c), query)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	var buf bytes.Buffer
	if err := controller.view.RenderSuggestions(&buf, state.Suggestions, seq); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.HTMLBlob(http.StatusOK, buf.Bytes())
}

// SelectSuggestion copies the chosen suggestion into the search box
func (controller *PageController) SelectSuggestion(c echo.Context) error {
	index := numberutils.ToIntWithDefault(c.FormValue("index"), -1)

	if _, err := controller.useCase.SelectSuggestion(c.Request().Context(), middleware.SessionID(c), index); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return controller.redirectToPage(c)
}

// DismissAlert clears the pending alert
func (controller *PageController) DismissAlert(c echo.Context) error {
	if _, err := controller.useCase.DismissAlert(c.Request().Context(), middleware.SessionID(c)); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return controller.redirectToPage(c)
}

func (controller *PageController) redirectToPage(c echo.Context) error {
	return c.Redirect(http.StatusSeeOther, controller.basePath+"/")
}
