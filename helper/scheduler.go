package helper

import (
	"time"

	"ubwiza_rentals/utils"

	"github.com/go-co-op/gocron/v2"
	"go.uber.org/zap"
)

// StartDailyScheduler runs task every day at hour:00 in loc.
func StartDailyScheduler(name string, hour int, loc *time.Location, task func()) (gocron.Scheduler, error) {
	s, err := gocron.NewScheduler(gocron.WithLocation(loc))
	if err != nil {
		return nil, err
	}

	_, err = s.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(
				gocron.NewAtTime(uint(hour), 0, 0),
			),
		),
		gocron.NewTask(task),
		gocron.WithName(name),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		_ = s.Shutdown()
		return nil, err
	}

	s.Start()
	utils.GetLogger().Info("Scheduler started",
		zap.String("job", name),
		zap.Int("hour", hour),
		zap.String("location", loc.String()),
	)
	return s, nil
}
