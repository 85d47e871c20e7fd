package db

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"startup-validator/config"
	"startup-validator/logger"
)

const ReportsCollection = "validation_reports"

// Connect dials MongoDB, verifies the connection, and ensures indexes.
// The returned client is owned by the caller; disconnect it on shutdown.
func Connect(ctx context.Context, cfg config.AppConfig) (*mongo.Client, *mongo.Database, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return nil, nil, err
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		client.Disconnect(ctx)
		return nil, nil, err
	}

	database := client.Database(cfg.DatabaseName)
	if err := ensureIndexes(ctx, database); err != nil {
		client.Disconnect(ctx)
		return nil, nil, err
	}

	logger.Log.Infof("MongoDB connected database=%s", cfg.DatabaseName)
	return client, database, nil
}

func ensureIndexes(ctx context.Context, d *mongo.Database) error {
	// validation_reports: created_at desc, backing newest-first listing
	_, err := d.Collection(ReportsCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "created_at", Value: -1}},
		Options: options.Index().SetName("idx_created_at_desc"),
	})
	return err
}

// Ping verifies storage liveness, used by the health endpoint.
func Ping(ctx context.Context, d *mongo.Database) error {
	return d.RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err()
}
