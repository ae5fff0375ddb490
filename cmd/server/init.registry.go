package main

import (
	"context"
	"time"

	"edu_crm/internal/bootstrap"
	"edu_crm/internal/global"
	"edu_crm/internal/logger"
)

// InitRegistry registers every collection, then creates missing collections and indexes.
func InitRegistry() {
	log := logger.GetAppLogger()
	db := global.MongoDB_Session.Database(global.MongoDB_ServerConfig.MongoDB_DBName)

	if err := bootstrap.RegisterCollections(db); err != nil {
		log.Fatalf("Failed to initialize collections: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()
	if err := bootstrap.EnsureSchema(ctx, db); err != nil {
		log.Fatalf("Failed to ensure collections and indexes: %v", err)
	}
	log.Info("Initialized collection registry")
}
