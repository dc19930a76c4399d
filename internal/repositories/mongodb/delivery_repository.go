package mongodb

import (
	"context"
	"fmt"
	"time"

	"logitrack/internal/models"
	"logitrack/internal/repositories/interfaces"
	"logitrack/internal/services"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const deliveryListCacheKey = "deliveries:all"

type deliveryRepository struct {
	collection *mongo.Collection
	cache      services.CacheService
}

func NewDeliveryRepository(db *mongo.Database, cache services.CacheService) interfaces.DeliveryRepository {
	return &deliveryRepository{
		collection: db.Collection("deliveries"),
		cache:      cache,
	}
}

func (r *deliveryRepository) Create(ctx context.Context, delivery *models.Delivery) error {
	delivery.ID = primitive.NewObjectID()
	delivery.CreatedAt = time.Now()
	delivery.UpdatedAt = delivery.CreatedAt

	_, err := r.collection.InsertOne(ctx, delivery)
	if err != nil {
		return fmt.Errorf("failed to create delivery: %w", err)
	}

	r.invalidateListCache(ctx)

	return nil
}

func (r *deliveryRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Delivery, error) {
	var delivery models.Delivery
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&delivery)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, interfaces.ErrDeliveryNotFound
		}
		return nil, fmt.Errorf("failed to get delivery: %w", err)
	}

	return &delivery, nil
}

func (r *deliveryRepository) List(ctx context.Context) ([]*models.Delivery, error) {
	// Try cache first; the dashboard reads this list on every view
	if r.cache != nil {
		var deliveries []*models.Delivery
		if err := r.cache.Get(ctx, deliveryListCacheKey, &deliveries); err == nil {
			return deliveries, nil
		}
	}

	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list deliveries: %w", err)
	}
	defer cursor.Close(ctx)

	var deliveries []*models.Delivery
	for cursor.Next(ctx) {
		var delivery models.Delivery
		if err := cursor.Decode(&delivery); err != nil {
			return nil, fmt.Errorf("failed to decode delivery: %w", err)
		}
		deliveries = append(deliveries, &delivery)
	}

	if r.cache != nil {
		r.cache.Set(ctx, deliveryListCacheKey, deliveries, 5*time.Minute)
	}

	return deliveries, nil
}

func (r *deliveryRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete delivery: %w", err)
	}
	if result.DeletedCount == 0 {
		return interfaces.ErrDeliveryNotFound
	}

	r.invalidateListCache(ctx)

	return nil
}

func (r *deliveryRepository) GetTotalCount(ctx context.Context) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count deliveries: %w", err)
	}
	return count, nil
}

func (r *deliveryRepository) invalidateListCache(ctx context.Context) {
	if r.cache != nil {
		r.cache.Delete(ctx, deliveryListCacheKey)
	}
}
