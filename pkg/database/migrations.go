package database

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the collection indexes the application relies on.
// Index creation is idempotent, so this runs on every startup.
func EnsureIndexes(db *mongo.Database) error {
	if err := createVehiclesIndexes(db); err != nil {
		return fmt.Errorf("failed to create vehicle indexes: %w", err)
	}
	if err := createDeliveriesIndexes(db); err != nil {
		return fmt.Errorf("failed to create delivery indexes: %w", err)
	}
	return nil
}

func createVehiclesIndexes(db *mongo.Database) error {
	ctx := context.Background()
	collection := db.Collection("vehicles")

	indexes := []mongo.IndexModel{
		{
			// Plate numbers are globally unique; duplicate inserts fail here
			Keys:    bson.D{{Key: "plate_number", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "created_at", Value: 1}},
		},
	}

	_, err := collection.Indexes().CreateMany(ctx, indexes)
	return err
}

func createDeliveriesIndexes(db *mongo.Database) error {
	ctx := context.Background()
	collection := db.Collection("deliveries")

	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "date", Value: 1}, {Key: "client", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "vehicle_id", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "created_at", Value: 1}},
		},
	}

	_, err := collection.Indexes().CreateMany(ctx, indexes)
	return err
}
