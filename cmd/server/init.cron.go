package main

import (
	"edu_crm/internal/bootstrap"
	"edu_crm/internal/global"
	"edu_crm/internal/logger"
	"edu_crm/internal/worker"
)

// InitCron starts the scheduled jobs. It returns nil when CRON_ENABLED is false.
func InitCron(svc *bootstrap.Services) *worker.Scheduler {
	log := logger.GetAppLogger()
	cfg := global.MongoDB_ServerConfig
	if !cfg.CronEnabled {
		log.Info("Scheduled jobs disabled")
		return nil
	}

	scheduler := worker.NewScheduler(svc.Jobs(cfg)...)
	if err := scheduler.Start(); err != nil {
		log.Fatalf("Failed to start scheduler: %v", err)
	}
	return scheduler
}
