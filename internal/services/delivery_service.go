package services

import (
	"context"
	"errors"
	"fmt"

	"logitrack/internal/models"
	"logitrack/internal/repositories/interfaces"
	"logitrack/internal/utils"
	"logitrack/internal/validators"
	"logitrack/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type DeliveryService interface {
	// LogDelivery runs the candidate through the validation engine and
	// persists the prepared record.
	LogDelivery(ctx context.Context, candidate *models.DeliveryCandidate) (*models.Delivery, validators.ValidationErrors, error)
	GetDelivery(ctx context.Context, id primitive.ObjectID) (*models.Delivery, error)
	ListDeliveries(ctx context.Context) ([]*models.Delivery, error)
	DeleteDelivery(ctx context.Context, id primitive.ObjectID) error
	GetDeliveryCount(ctx context.Context) (int64, error)
}

type deliveryService struct {
	deliveryRepo interfaces.DeliveryRepository
	vehicleRepo  interfaces.VehicleRepository
	logger       *logger.Logger
}

func NewDeliveryService(
	deliveryRepo interfaces.DeliveryRepository,
	vehicleRepo interfaces.VehicleRepository,
	logger *logger.Logger,
) DeliveryService {
	return &deliveryService{
		deliveryRepo: deliveryRepo,
		vehicleRepo:  vehicleRepo,
		logger:       logger,
	}
}

func (s *deliveryService) LogDelivery(ctx context.Context, candidate *models.DeliveryCandidate) (*models.Delivery, validators.ValidationErrors, error) {
	vehicle, err := s.resolveVehicle(ctx, candidate.VehicleID)
	if err != nil {
		return nil, nil, err
	}

	delivery, errs := validators.ValidateAndPrepare(candidate, vehicle)
	if len(errs) > 0 {
		return nil, errs, nil
	}

	if err := s.deliveryRepo.Create(ctx, delivery); err != nil {
		return nil, nil, fmt.Errorf("failed to log delivery: %w", err)
	}

	s.logger.LogDeliveryEvent(delivery.ID, utils.EventDeliveryLogged, map[string]interface{}{
		"client":       delivery.Client,
		"weight_kg":    delivery.WeightKg,
		"total_ariary": delivery.TotalAriary,
		"vehicle_id":   delivery.VehicleID.Hex(),
	})

	return delivery, nil, nil
}

// resolveVehicle looks up the referenced vehicle. An invalid or missing
// id yields a nil vehicle, which the validation engine reports as a
// field error; only infrastructure failures propagate.
func (s *deliveryService) resolveVehicle(ctx context.Context, vehicleID string) (*models.Vehicle, error) {
	oid, err := primitive.ObjectIDFromHex(vehicleID)
	if err != nil {
		return nil, nil
	}

	vehicle, err := s.vehicleRepo.GetByID(ctx, oid)
	if err != nil {
		if errors.Is(err, interfaces.ErrVehicleNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to resolve vehicle: %w", err)
	}
	return vehicle, nil
}

func (s *deliveryService) GetDelivery(ctx context.Context, id primitive.ObjectID) (*models.Delivery, error) {
	return s.deliveryRepo.GetByID(ctx, id)
}

func (s *deliveryService) ListDeliveries(ctx context.Context) ([]*models.Delivery, error) {
	deliveries, err := s.deliveryRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list deliveries: %w", err)
	}
	return deliveries, nil
}

func (s *deliveryService) DeleteDelivery(ctx context.Context, id primitive.ObjectID) error {
	if err := s.deliveryRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.WithDeliveryID(id).WithField("event", utils.EventDeliveryDeleted).Info("Delivery deleted")
	return nil
}

func (s *deliveryService) GetDeliveryCount(ctx context.Context) (int64, error) {
	return s.deliveryRepo.GetTotalCount(ctx)
}
