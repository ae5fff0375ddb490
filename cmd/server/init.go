package main

import (
	"context"

	"edu_crm/config"
	"edu_crm/internal/bootstrap"
	"edu_crm/internal/database"
	"edu_crm/internal/global"
	"edu_crm/internal/logger"
)

// InitGlobal sets collection names, the validator, the configuration and the Mongo client.
func InitGlobal() {
	bootstrap.InitColNames()
	initValidator()
	initConfig()
	initDatabase_MongoDB()
}

func initValidator() {
	global.InitValidator()
	logger.GetAppLogger().Info("Initialized validator")
}

func initConfig() {
	global.MongoDB_ServerConfig = config.NewConfig()
	if global.MongoDB_ServerConfig == nil {
		logger.GetAppLogger().Fatal("Failed to initialize config: config is nil")
	}
	logger.GetAppLogger().WithField("environment", global.MongoDB_ServerConfig.Environment).Info("Initialized server config")
}

func initDatabase_MongoDB() {
	var err error
	global.MongoDB_Session, err = database.GetInstance(global.MongoDB_ServerConfig)
	if err != nil {
		logger.GetAppLogger().Fatalf("Failed to get database instance: %v", err)
	}
}

// InitServices builds the service graph on the registered collections.
func InitServices() *bootstrap.Services {
	svc, err := bootstrap.NewServices(context.Background(), global.MongoDB_ServerConfig)
	if err != nil {
		logger.GetAppLogger().Fatalf("Failed to initialize services: %v", err)
	}
	return svc
}
