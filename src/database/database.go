package database

import (
	"context"
	"fmt"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

var (
	client     *mongo.Client
	once       sync.Once // ConnectMongoDB runs only once per process
	connectErr error

	FormCollection      *mongo.Collection
	ResponseCollection  *mongo.Collection
	FormStatsCollection *mongo.Collection
)

// ConnectMongoDB connects and pings the deployment once, then binds the collections in dbName.
func ConnectMongoDB(ctx context.Context, uri, dbName string, log *zap.Logger) error {
	once.Do(func() {
		c, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
		if err != nil {
			connectErr = fmt.Errorf("connect mongodb: %w", err)
			return
		}
		if err := c.Ping(ctx, readpref.Primary()); err != nil {
			connectErr = fmt.Errorf("ping mongodb: %w", err)
			return
		}
		client = c

		FormCollection = GetCollection(dbName, "forms")
		ResponseCollection = GetCollection(dbName, "responses")
		FormStatsCollection = GetCollection(dbName, "form_stats")

		log.Info("MongoDB connected", zap.String("db", dbName))
		if err := ensureIndexes(ctx); err != nil {
			log.Warn("could not create indexes", zap.Error(err))
		}
	})
	return connectErr
}

// ensureIndexes keeps one stats document per form.
func ensureIndexes(ctx context.Context) error {
	_, err := FormStatsCollection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "formId", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

// GetCollection returns a collection handle from the connected client.
func GetCollection(dbName, collectionName string) *mongo.Collection {
	if client == nil {
		return nil
	}
	return client.Database(dbName).Collection(collectionName)
}

// DisconnectMongoDB closes the shared client.
func DisconnectMongoDB(ctx context.Context) error {
	if client == nil {
		return nil
	}
	return client.Disconnect(ctx)
}
