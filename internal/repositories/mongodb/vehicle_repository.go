package mongodb

import (
	"context"
	"fmt"
	"strings"
	"time"

	"logitrack/internal/models"
	"logitrack/internal/repositories/interfaces"
	"logitrack/internal/services"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type vehicleRepository struct {
	collection *mongo.Collection
	cache      services.CacheService
}

func NewVehicleRepository(db *mongo.Database, cache services.CacheService) interfaces.VehicleRepository {
	return &vehicleRepository{
		collection: db.Collection("vehicles"),
		cache:      cache,
	}
}

func (r *vehicleRepository) Create(ctx context.Context, vehicle *models.Vehicle) error {
	vehicle.ID = primitive.NewObjectID()
	vehicle.CreatedAt = time.Now()
	vehicle.UpdatedAt = vehicle.CreatedAt

	// Normalize plate number to uppercase
	vehicle.PlateNumber = strings.ToUpper(strings.TrimSpace(vehicle.PlateNumber))

	_, err := r.collection.InsertOne(ctx, vehicle)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return interfaces.ErrDuplicatePlate
		}
		return fmt.Errorf("failed to create vehicle: %w", err)
	}

	r.cacheVehicle(ctx, vehicle)

	return nil
}

func (r *vehicleRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Vehicle, error) {
	// Try cache first
	if vehicle := r.getVehicleFromCache(ctx, id.Hex()); vehicle != nil {
		return vehicle, nil
	}

	var vehicle models.Vehicle
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&vehicle)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, interfaces.ErrVehicleNotFound
		}
		return nil, fmt.Errorf("failed to get vehicle: %w", err)
	}

	r.cacheVehicle(ctx, &vehicle)

	return &vehicle, nil
}

func (r *vehicleRepository) GetByPlateNumber(ctx context.Context, plateNumber string) (*models.Vehicle, error) {
	plateNumber = strings.ToUpper(strings.TrimSpace(plateNumber))

	cacheKey := fmt.Sprintf("vehicle_plate:%s", plateNumber)
	if r.cache != nil {
		var vehicle models.Vehicle
		if err := r.cache.Get(ctx, cacheKey, &vehicle); err == nil {
			return &vehicle, nil
		}
	}

	var vehicle models.Vehicle
	err := r.collection.FindOne(ctx, bson.M{"plate_number": plateNumber}).Decode(&vehicle)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, interfaces.ErrVehicleNotFound
		}
		return nil, fmt.Errorf("failed to get vehicle by plate number: %w", err)
	}

	if r.cache != nil {
		r.cache.Set(ctx, cacheKey, vehicle, 30*time.Minute)
	}

	return &vehicle, nil
}

func (r *vehicleRepository) List(ctx context.Context) ([]*models.Vehicle, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list vehicles: %w", err)
	}
	defer cursor.Close(ctx)

	var vehicles []*models.Vehicle
	for cursor.Next(ctx) {
		var vehicle models.Vehicle
		if err := cursor.Decode(&vehicle); err != nil {
			return nil, fmt.Errorf("failed to decode vehicle: %w", err)
		}
		vehicles = append(vehicles, &vehicle)
	}

	return vehicles, nil
}

func (r *vehicleRepository) GetTotalCount(ctx context.Context) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count vehicles: %w", err)
	}
	return count, nil
}

// Cache operations
func (r *vehicleRepository) cacheVehicle(ctx context.Context, vehicle *models.Vehicle) {
	if r.cache == nil {
		return
	}

	cacheKey := fmt.Sprintf("vehicle:%s", vehicle.ID.Hex())
	r.cache.Set(ctx, cacheKey, vehicle, 15*time.Minute)

	if vehicle.PlateNumber != "" {
		plateKey := fmt.Sprintf("vehicle_plate:%s", vehicle.PlateNumber)
		r.cache.Set(ctx, plateKey, vehicle, 30*time.Minute)
	}
}

func (r *vehicleRepository) getVehicleFromCache(ctx context.Context, vehicleID string) *models.Vehicle {
	if r.cache == nil {
		return nil
	}

	cacheKey := fmt.Sprintf("vehicle:%s", vehicleID)
	var vehicle models.Vehicle
	if err := r.cache.Get(ctx, cacheKey, &vehicle); err != nil {
		return nil
	}

	return &vehicle
}
