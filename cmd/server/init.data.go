package main

import (
	"context"
	"time"

	teamsvc "edu_crm/internal/api/team/service"
	"edu_crm/internal/global"
	"edu_crm/internal/logger"
)

// InitDefaultData seeds the administrator from ADMIN_* when no admin exists yet.
func InitDefaultData(team *teamsvc.TeamService) {
	log := logger.GetAppLogger()
	cfg := global.MongoDB_ServerConfig
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		log.Info("ADMIN_EMAIL or ADMIN_PASSWORD not set, skipping admin seed")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	created, err := team.EnsureAdmin(ctx, cfg.AdminEmail, cfg.AdminPassword, cfg.AdminName)
	if err != nil {
		log.WithError(err).Error("Failed to seed administrator")
		return
	}
	if created {
		logger.Audit("team.seed_admin", "system").WithField("email", cfg.AdminEmail).Info("administrator created")
		return
	}
	log.Info("Administrator already exists")
}
