package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	"weather-app/configs"
	"weather-app/docs"
	"weather-app/internal/application/controller"
	"weather-app/internal/application/middleware"
	"weather-app/internal/application/schedule"
	"weather-app/internal/application/view"
	"weather-app/internal/domain/gateway/api"
	"weather-app/internal/domain/gateway/session"
	"weather-app/internal/domain/usecase/health"
	"weather-app/internal/domain/usecase/weather"
	pkghttp "weather-app/pkg/http"
	"weather-app/pkg/log"
	"weather-app/pkg/msg"
	"weather-app/pkg/redis"
	"weather-app/pkg/resource"
)

func main() {
	log.Info(msg.GetMessage("app.start"))
	defer log.Sync()

	contextPath := resource.GetString("app.server.context-path")
	port := resource.GetString("app.server.port")
	sessionTTL := resource.GetDuration("app.session.ttl")

	// Init infra
	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.RequestID())
	e.Use(echomw.Recover())
	middleware.SetupRequestLogger(e)

	root := e.Group(contextPath)
	page := root.Group("", middleware.Session(resource.GetString("app.session.cookie-name"), sessionTTL))
	apiGroup := root.Group("/api/v1")

	docs.SwaggerInfo.BasePath = contextPath + "/"
	root.GET("/swagger/*", echoSwagger.WrapHandler)

	// Init Gateways
	weatherGateway := api.NewWeatherGateway(resource.GetString("app.openweather.base-url"), api.GatewayOptions{
		APIKey:          openWeatherKey(),
		Units:           resource.GetString("app.openweather.units"),
		SuggestionLimit: resource.GetInt("app.openweather.suggestion-limit"),
		ClientOptions: pkghttp.ClientOptions{
			ConnectionTimeout: resource.GetDuration("app.openweather.connection-timeout"),
			ReadTimeout:       resource.GetDuration("app.openweather.read-timeout"),
		},
	})
	if !weatherGateway.Configured() {
		log.Warn("OPENWEATHER_API_KEY is not set, every lookup will fail")
	}

	sessionGateway, closeSessions := newSessionGateway(sessionTTL)
	defer closeSessions()
	log.Info(msg.GetMessage("app.session-store", sessionGateway.Name()))

	// Init UseCase
	healthUseCase := health.NewHealthUseCase(sessionGateway, weatherGateway)
	weatherUseCase := weather.NewWeatherUseCase(weatherGateway, sessionGateway)

	// Init View
	pageView, err := view.New(contextPath)
	if err != nil {
		log.Fatal("Failed to initialize view", zap.Error(err))
	}

	// Init Controller
	healthController := controller.NewHealthController(root, healthUseCase)
	weatherController := controller.NewWeatherController(apiGroup, weatherUseCase)
	pageController := controller.NewPageController(page, weatherUseCase, pageView, contextPath)

	// Init Routes
	healthController.InitHealthRoutes()
	weatherController.InitWeatherRoutes()
	pageController.InitPageRoutes()

	// Init Schedule
	sessionScheduler := schedule.NewSessionScheduler(sessionGateway, resource.GetString("app.session.sweep.cron"), sessionTTL)
	if err := sessionScheduler.InitSessionScheduleTasks(); err != nil {
		log.Fatal("Failed to initialize session scheduler", zap.Error(err))
	}

	// Start Routes
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := e.Start(":" + port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server stopped unexpectedly", zap.Error(err))
		}
	}()
	log.Info(msg.GetMessage("app.started", port))

	<-ctx.Done()
	log.Info(msg.GetMessage("app.stop"))

	sessionScheduler.Stop()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error("Failed to shut down server", zap.Error(err))
	}
}

// openWeatherKey prefers app.openweather.api-key and falls back to the environment loaded from .env
func openWeatherKey() string {
	if key := resource.GetString("app.openweather.api-key"); key != "" {
		return key
	}
	return configs.Env.OpenWeatherKey
}

// newSessionGateway builds the store selected by app.session.store and a func releasing it
func newSessionGateway(ttl time.Duration) (session.SessionGateway, func()) {
	if resource.GetString("app.session.store") != session.StoreRedis {
		return session.NewMemorySessionGateway(), func() {}
	}

	redisConfig := redis.NewRedisConfig().
		WithHost(resource.GetString("redis.host")).
		WithPort(resource.GetInt("redis.port")).
		WithPassword(resource.GetString("redis.password")).
		WithDatabase(resource.GetInt("redis.database"))

	client, err := redis.NewClient(redisConfig)
	if err != nil {
		log.Fatal("Failed to create redis client", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx); err != nil {
		log.Fatal("Failed to connect to redis", zap.String("addr", redisConfig.Addr()), zap.Error(err))
	}

	return session.NewRedisSessionGateway(client, ttl), func() {
		if err := client.Close(); err != nil {
			log.Warn("Failed to close redis client", zap.Error(err))
		}
	}
}
