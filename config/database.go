package config

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/abivignesh701/fittrack/logger"
)

// ConnectDB connects to MongoDB and returns a handle to the application database.
// Callers pass the handle down to services instead of reading a package singleton.
func ConnectDB(cfg *Config) (*mongo.Database, error) {
	logger.Info("Attempting to connect to MongoDB...")

	clientOptions := options.Client().ApplyURI(cfg.MongoURI)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	logger.Info("Successfully connected to MongoDB!")
	return client.Database(cfg.MongoDB), nil
}
