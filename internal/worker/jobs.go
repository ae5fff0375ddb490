package worker

import (
	"context"
	"time"

	"edu_crm/internal/logger"

	"github.com/hashicorp/go-multierror"
)

// Job names.
const (
	JobFollowUps           = "follow_up_reminders"
	JobNotificationCleanup = "notification_cleanup"
)

// FollowUpSource sends reminders for the records whose follow-up falls on the day of now.
type FollowUpSource interface {
	EntityType() string
	DueFollowUps(ctx context.Context, now time.Time) (int, error)
}

// NotificationCleaner deletes read notifications older than retention.
type NotificationCleaner interface {
	Cleanup(ctx context.Context, retention time.Duration) (int64, error)
}

// FollowUpJob reminds assignees of today's follow-ups across sources. A failing source does not
// stop the others.
func FollowUpJob(spec string, now func() time.Time, sources ...FollowUpSource) Job {
	if now == nil {
		now = time.Now
	}
	return Job{
		Name: JobFollowUps,
		Spec: spec,
		Run: func(ctx context.Context) error {
			var result *multierror.Error
			at := now()
			for _, src := range sources {
				sent, err := src.DueFollowUps(ctx, at)
				entry := logger.WithModule("cron").WithFields(map[string]interface{}{"entity": src.EntityType(), "sent": sent})
				if err != nil {
					entry.WithError(err).Warn("follow-up reminders incomplete")
					result = multierror.Append(result, err)
					continue
				}
				entry.Info("follow-up reminders sent")
			}
			return result.ErrorOrNil()
		},
	}
}

// NotificationCleanupJob removes read notifications older than retentionDays.
func NotificationCleanupJob(spec string, cleaner NotificationCleaner, retentionDays int) Job {
	if retentionDays <= 0 {
		retentionDays = 90
	}
	return Job{
		Name: JobNotificationCleanup,
		Spec: spec,
		Run: func(ctx context.Context) error {
			removed, err := cleaner.Cleanup(ctx, time.Duration(retentionDays)*24*time.Hour)
			if err != nil {
				return err
			}
			logger.WithModule("cron").WithFields(map[string]interface{}{
				"removed": removed, "retentionDays": retentionDays,
			}).Info("old notifications removed")
			return nil
		},
	}
}
