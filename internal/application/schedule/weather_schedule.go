package schedule

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"weather-spots-api/internal/domain/usecase/weather"
	"weather-spots-api/pkg/log"
	"weather-spots-api/pkg/redis"
)

// WeatherSchedulerConfig holds configuration for the weather scheduler
type WeatherSchedulerConfig struct {
	CronExpression  string
	LockTTL         time.Duration
	RefreshInterval time.Duration
}

// WeatherScheduler refreshes weather for all spots on a cron schedule. A
// Redis distributed lock keeps the refresh on a single instance.
type WeatherScheduler struct {
	cron        *cron.Cron
	useCase     weather.UseCase
	redisClient *redis.Client
	config      *WeatherSchedulerConfig
}

// NewWeatherScheduler creates a new weather scheduler with distributed locking support
func NewWeatherScheduler(useCase weather.UseCase, redisClient *redis.Client, cronExpression string, lockTTL int, refreshInterval int) *WeatherScheduler {
	return &WeatherScheduler{
		cron:        cron.New(),
		useCase:     useCase,
		redisClient: redisClient,
		config: &WeatherSchedulerConfig{
			CronExpression:  cronExpression,
			LockTTL:         time.Duration(lockTTL) * time.Second,
			RefreshInterval: time.Duration(refreshInterval) * time.Second,
		},
	}
}

// InitWeatherScheduleTasks initializes weather schedule tasks with distributed locking
func (s *WeatherScheduler) InitWeatherScheduleTasks(ctx context.Context) {
	go func() {
		lock := redis.NewScheduledTaskLock(
			s.redisClient,
			"weather_refresh_scheduler",
			s.getLockTTL(),
			s.getRefreshInterval(),
			"weather_schedules",
		)

		err := lock.Lock(ctx)
		if err != nil {
			log.Errorf("Failed to acquire distributed lock, weather scheduler will not be initialized: %v", err)
			return
		}

		// Keep the lock alive for as long as this instance runs the schedule
		refreshErrChan := lock.AutoRefresh(ctx)

		cronExpression := s.config.CronExpression

		_, err = s.cron.AddFunc(cronExpression, s.ExecuteScheduledTask)
		if err != nil {
			log.Errorf("Failed to initialize weather scheduler, cron will not be started: %v", err)
			return
		}

		s.cron.Start()
		log.Infof("Weather refresh scheduler started successfully with cron expression: %s", cronExpression)

		// Stop the scheduler when the lock cannot be held anymore
		err = <-refreshErrChan

		if s.cron != nil {
			cronCtx := s.cron.Stop()
			<-cronCtx.Done()
		}

		if err != nil {
			log.Errorf("Weather refresh scheduler stopped due to auto-refresh failure: %v", err)
		} else {
			log.Info("Weather refresh scheduler stopped gracefully")
		}
	}()
}

// ExecuteScheduledTask refreshes weather across all spots. The batch is
// freshness-gated, so only stale spots reach the upstream API.
func (s *WeatherScheduler) ExecuteScheduledTask() {
	requestID := uuid.New().String()

	log.Info("Scheduled weather refresh triggered", zap.String("request_id", requestID))

	results, err := s.useCase.BatchFetchWeather(false)
	if err != nil {
		log.Error("Failed to execute scheduled weather refresh", zap.String("request_id", requestID), zap.Error(err))
		return
	}

	refreshed := 0
	failed := 0
	for _, record := range results {
		if record != nil {
			refreshed++
		} else {
			failed++
		}
	}

	log.Info("Scheduled weather refresh completed",
		zap.String("request_id", requestID),
		zap.Int("spots", len(results)),
		zap.Int("refreshed", refreshed),
		zap.Int("failed", failed))
}

// Stop gracefully stops the scheduler
func (s *WeatherScheduler) Stop() {
	if s.cron != nil {
		ctx := s.cron.Stop()
		<-ctx.Done()
	}
}

func (s *WeatherScheduler) getLockTTL() time.Duration {
	if s.config.LockTTL > 0 {
		return s.config.LockTTL
	}
	return 10 * time.Minute
}

func (s *WeatherScheduler) getRefreshInterval() time.Duration {
	if s.config.RefreshInterval > 0 {
		return s.config.RefreshInterval
	}
	return 1 * time.Minute
}
