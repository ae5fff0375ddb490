package cmd

import (
	"context"
	"fmt"
	"os"

	"edu_crm/config"
	"edu_crm/internal/bootstrap"
	"edu_crm/internal/database"
	"edu_crm/internal/global"
	"edu_crm/internal/logger"

	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	envFile  string
	logLevel string

	rootCmd = &cobra.Command{
		Use:           "crmctl",
		Short:         "Maintenance commands for the education CRM",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "env file to load (default: config/env/<GO_ENV>.env)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")

	rootCmd.AddCommand(createAdminCmd)
	rootCmd.AddCommand(ensureIndexesCmd)
	rootCmd.AddCommand(importLeadsCmd)
	rootCmd.AddCommand(runJobCmd)
}

// session is an open database connection with the collections registered.
type session struct {
	cfg    *config.Configuration
	client *mongo.Client
	db     *mongo.Database
}

func (s *session) Close() {
	_ = database.CloseInstance(s.client)
	logger.Close()
}

// connect loads the configuration, connects to MongoDB and registers every collection.
func connect() (*session, error) {
	logCfg := logger.DefaultConfig()
	logCfg.Output = "stdout"
	if logLevel != "" {
		logCfg.Level = logLevel
	}
	if err := logger.Init(logCfg); err != nil {
		return nil, err
	}

	var files []string
	if envFile != "" {
		files = append(files, envFile)
	}
	cfg := config.NewConfig(files...)
	if cfg == nil {
		return nil, fmt.Errorf("configuration is incomplete, check MONGODB_CONNECTION_URI and JWT_SECRET")
	}
	global.MongoDB_ServerConfig = cfg
	global.InitValidator()
	bootstrap.InitColNames()

	client, err := database.GetInstance(cfg)
	if err != nil {
		return nil, err
	}
	global.MongoDB_Session = client
	db := client.Database(cfg.MongoDB_DBName)
	if err := bootstrap.RegisterCollections(db); err != nil {
		_ = database.CloseInstance(client)
		return nil, err
	}
	return &session{cfg: cfg, client: client, db: db}, nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
