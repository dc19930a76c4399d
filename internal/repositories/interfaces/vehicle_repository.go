package interfaces

import (
	"context"

	"logitrack/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type VehicleRepository interface {
	// Create persists a new vehicle. A plate number collision returns
	// ErrDuplicatePlate.
	Create(ctx context.Context, vehicle *models.Vehicle) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Vehicle, error)
	GetByPlateNumber(ctx context.Context, plateNumber string) (*models.Vehicle, error)

	// List returns all vehicles in creation order.
	List(ctx context.Context) ([]*models.Vehicle, error)

	GetTotalCount(ctx context.Context) (int64, error)
}
