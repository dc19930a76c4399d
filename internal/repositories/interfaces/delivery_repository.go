package interfaces

import (
	"context"

	"logitrack/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type DeliveryRepository interface {
	// Create persists a validated delivery and assigns its id.
	Create(ctx context.Context, delivery *models.Delivery) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Delivery, error)

	// List returns all deliveries in creation order. The reporting engine
	// works over this full list in memory.
	List(ctx context.Context) ([]*models.Delivery, error)

	// Delete removes a delivery permanently. A missing id returns
	// ErrDeliveryNotFound, not silent success.
	Delete(ctx context.Context, id primitive.ObjectID) error

	GetTotalCount(ctx context.Context) (int64, error)
}
