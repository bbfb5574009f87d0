package main

import (
	"context"
	"time"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"weather-spots-api/configs"
	_ "weather-spots-api/docs"
	"weather-spots-api/internal/application/controller"
	"weather-spots-api/internal/application/middleware"
	"weather-spots-api/internal/application/processor"
	"weather-spots-api/internal/application/schedule"
	weatherapi "weather-spots-api/internal/domain/gateway/api"
	"weather-spots-api/internal/domain/gateway/cache"
	"weather-spots-api/internal/domain/gateway/db"
	"weather-spots-api/internal/domain/gateway/queue"
	"weather-spots-api/internal/domain/usecase/health"
	"weather-spots-api/internal/domain/usecase/spot"
	"weather-spots-api/internal/domain/usecase/weather"
	"weather-spots-api/internal/infra/aws"
	gormdb "weather-spots-api/internal/infra/database/gorm"
	httpclient "weather-spots-api/pkg/http"
	"weather-spots-api/pkg/log"
	"weather-spots-api/pkg/msg"
	"weather-spots-api/pkg/redis"
	"weather-spots-api/pkg/resource"
	"weather-spots-api/pkg/sqs"
)

// @title Weather Spots API
// @version 1.0
// @description Tracks geographic spots and proxies current and historical weather for them.
// @BasePath /api
func main() {
	log.Info(msg.GetMessage("app.start"))

	ctx := context.Background()

	// Init infra
	e := echo.New()
	middleware.SetupRequestLogger(e)
	middleware.SetupCORS(e)
	middleware.SetupValidator(e)
	api := e.Group(configs.Env.ContextPath)

	apiKey := resource.GetString("app.weather.api-key")
	if apiKey == "" {
		log.Warn(msg.GetMessage("app.missing-api-key"))
	}

	redisClient := redis.NewClient(&redis.Config{
		Host:     resource.GetString("app.redis.host"),
		Port:     resource.GetInt("app.redis.port"),
		Password: resource.GetString("app.redis.password"),
		Database: resource.GetInt("app.redis.database"),
	})

	sqsClient := aws.NewSqsClient()
	queueName := resource.GetString("app.weather.fetch-queue")

	// Init Gateway
	weatherGateway := weatherapi.NewWeatherGateway(
		resource.GetString("app.weather.base-url"),
		httpclient.ClientOptions{
			ReadTimeout: resource.GetDuration("app.weather.timeout"),
		},
		weatherapi.GatewayOptions{
			APIKey:     apiKey,
			MaxRetries: resource.GetInt("app.weather.max-retries"),
			BaseDelay:  resource.GetDuration("app.weather.base-delay"),
		},
	)
	spotGateway := db.NewGormSpotGateway(gormdb.Db)
	healthDBGateway := db.NewGormHealthDBGateway(gormdb.Db)
	cacheHealthGateway := cache.NewRedisHealthGateway(redisClient)
	queueHealthGateway := queue.NewQueueHealthGateway()
	queueSender := aws.NewSQSSenderAdapter(sqsClient)

	// Init UseCase
	weatherUseCase := weather.NewWeatherUseCase(
		resource.GetDuration("app.weather.freshness-window"),
		weatherGateway,
		spotGateway,
	)
	spotUseCase := spot.NewSpotUseCase(queueName, queueSender, weatherGateway, spotGateway)
	healthUseCase := health.NewHealthUseCase(healthDBGateway, cacheHealthGateway, queueHealthGateway)

	// Init Worker
	weatherProcessor := processor.NewWeatherProcessor(weatherUseCase)
	weatherWorker, err := sqs.NewWorker(sqsClient, queueName, weatherProcessor, nil)
	if err != nil {
		log.Errorf("Failed to start weather fetch worker: %v", err)
	} else {
		queueHealthGateway.RegisterWorker("weather_fetch_worker", weatherWorker)
		go weatherWorker.Start(ctx)
	}

	// Init Controller
	healthController := controller.NewHealthController(api, healthUseCase)
	spotController := controller.NewSpotController(api, spotUseCase)
	weatherController := controller.NewWeatherController(api, weatherUseCase)
	geocodingController := controller.NewGeocodingController(api, spotUseCase)

	// Init Routes
	healthController.InitHealthRoutes()
	spotController.InitSpotRoutes()
	weatherController.InitWeatherRoutes()
	geocodingController.InitGeocodingRoutes()
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Init Schedule
	weatherScheduler := schedule.NewWeatherScheduler(
		weatherUseCase,
		redisClient,
		resource.GetString("app.weather.refresh.cron"),
		resource.GetInt("app.weather.refresh.lock-ttl-seconds"),
		resource.GetInt("app.weather.refresh.lock-refresh-seconds"),
	)
	weatherScheduler.InitWeatherScheduleTasks(ctx)

	retentionScheduler := schedule.NewRetentionScheduler(
		weatherUseCase,
		time.Duration(resource.GetInt("app.weather.retention.days"))*24*time.Hour,
	)
	retentionScheduler.InitRetentionScheduleTasks(resource.GetString("app.weather.retention.cron"))

	// Start Routes
	e.Logger.Fatal(e.Start(":" + resource.GetString("app.server.port")))
	log.Info(msg.GetMessage("app.started"))
}
