package database

import (
	"context"
	"fmt"
	"time"

	"edu_crm/config"
	"edu_crm/internal/logger"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const appName = "edu_crm"

// ClientOptions builds the driver options from the configuration.
func ClientOptions(c *config.Configuration) *options.ClientOptions {
	timeout := time.Duration(c.MongoDB_TimeoutSec) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	pool := c.MongoDB_MaxPoolSize
	if pool == 0 {
		pool = 50
	}
	return options.Client().
		ApplyURI(c.MongoDB_ConnectionURI).
		SetAppName(appName).
		SetMaxPoolSize(pool).
		SetConnectTimeout(timeout / 2).
		SetServerSelectionTimeout(timeout).
		SetRetryWrites(true)
}

// GetInstance connects to MongoDB and waits for the primary to answer.
func GetInstance(c *config.Configuration) (*mongo.Client, error) {
	if c.MongoDB_ConnectionURI == "" {
		return nil, fmt.Errorf("MONGODB_CONNECTION_URI is empty")
	}
	opts := ClientOptions(c)

	ctx, cancel := context.WithTimeout(context.Background(), *opts.ServerSelectionTimeout)
	defer cancel()
	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("connect mongodb: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}

	logger.WithModule("database").WithField("db", c.MongoDB_DBName).Info("connected to MongoDB")
	return client, nil
}

// CloseInstance disconnects the client. A nil client is ignored.
func CloseInstance(client *mongo.Client) error {
	if client == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Disconnect(ctx); err != nil {
		logger.WithModule("database").WithError(err).Error("mongodb disconnect failed")
		return err
	}
	logger.WithModule("database").Info("disconnected from MongoDB")
	return nil
}
