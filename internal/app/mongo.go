package app

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"taskboard/internal/config"
	"taskboard/internal/storage/mongodb"
)

var (
	globalMongoClient   *mongo.Client
	globalMongoDatabase *mongo.Database
)

func MustConnectMongo() {
	cfg := config.Global().Mongo

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		globalLogger.Error().
			Err(err).
			Msg("failed to connect to mongo")
		panic(err)
	}

	pingCtx, pingCancel := context.WithTimeout(context.Background(), cfg.PingTimeout)
	defer pingCancel()

	err = client.Ping(pingCtx, readpref.Primary())
	if err != nil {
		globalLogger.Error().
			Err(err).
			Msg("failed to ping mongo")
		panic(err)
	}

	globalMongoClient = client
	globalMongoDatabase = client.Database(cfg.Database)

	// Index bootstrap gets its own budget rather than whatever the ping
	// left of pingCtx.
	indexCtx, indexCancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
	defer indexCancel()

	err = mongodb.EnsureIndexes(indexCtx, globalMongoDatabase)
	if err != nil {
		globalLogger.Error().
			Err(err).
			Msg("failed to ensure mongo indexes")
		panic(err)
	}

	globalLogger.Info().
		Str("database", cfg.Database).
		Msg("connected to mongo")
}

func DisconnectMongo() {
	err := globalMongoClient.Disconnect(context.Background())
	if err != nil {
		globalLogger.Error().
			Err(err).
			Msg("failed to disconnect from mongo")
		return
	}
	globalLogger.Info().Msg("disconnected from mongo")
}
