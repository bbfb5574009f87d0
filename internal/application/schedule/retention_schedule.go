package schedule

import (
	"time"

	"github.com/go-co-op/gocron/v2"

	"weather-spots-api/internal/domain/usecase/weather"
	"weather-spots-api/pkg/log"
	"weather-spots-api/pkg/msg"
)

// DefaultRetention is how long weather records are kept before being purged.
const DefaultRetention = 90 * 24 * time.Hour

// RetentionScheduler periodically purges weather records older than the
// retention window.
type RetentionScheduler struct {
	scheduler gocron.Scheduler
	useCase   weather.UseCase
	retention time.Duration
}

func NewRetentionScheduler(useCase weather.UseCase, retention time.Duration) *RetentionScheduler {
	if retention <= 0 {
		retention = DefaultRetention
	}
	return &RetentionScheduler{
		useCase:   useCase,
		retention: retention,
	}
}

// InitRetentionScheduleTasks initializes the retention purge task
func (scheduler *RetentionScheduler) InitRetentionScheduleTasks(cronExpression string) {
	s, err := gocron.NewScheduler()
	if err != nil {
		panic(err)
	}
	scheduler.scheduler = s

	_, err = s.NewJob(
		gocron.CronJob(cronExpression, false),
		gocron.NewTask(scheduler.PurgeOldWeatherRecords),
	)
	if err != nil {
		panic(err)
	}

	s.Start()
}

func (scheduler *RetentionScheduler) PurgeOldWeatherRecords() {
	log.Info(msg.GetMessage("weather.retention.start"))

	deleted, err := scheduler.useCase.PurgeOldRecords(scheduler.retention)
	if err != nil {
		log.Error(msg.GetMessage("weather.retention.failed", err))
		return
	}

	log.Info(msg.GetMessage("weather.retention.end", deleted))
}

// Stop gracefully stops the scheduler
func (scheduler *RetentionScheduler) Stop() {
	if scheduler.scheduler != nil {
		_ = scheduler.scheduler.Shutdown()
	}
}
