package services

import (
	"context"
	"fmt"
	"strings"

	"logitrack/internal/models"
	"logitrack/internal/repositories/interfaces"
	"logitrack/internal/utils"
	"logitrack/internal/validators"
	"logitrack/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type VehicleService interface {
	RegisterVehicle(ctx context.Context, req *validators.VehicleCreateRequest) (*models.Vehicle, validators.ValidationErrors, error)
	GetVehicle(ctx context.Context, id primitive.ObjectID) (*models.Vehicle, error)
	GetVehicleByPlate(ctx context.Context, plateNumber string) (*models.Vehicle, error)
	ListVehicles(ctx context.Context) ([]*models.Vehicle, error)
	GetVehicleCount(ctx context.Context) (int64, error)
}

type vehicleService struct {
	vehicleRepo interfaces.VehicleRepository
	logger      *logger.Logger
}

func NewVehicleService(vehicleRepo interfaces.VehicleRepository, logger *logger.Logger) VehicleService {
	return &vehicleService{
		vehicleRepo: vehicleRepo,
		logger:      logger,
	}
}

// RegisterVehicle validates and persists a new vehicle. Validation
// failures come back as field errors; a duplicate plate surfaces as
// interfaces.ErrDuplicatePlate.
func (s *vehicleService) RegisterVehicle(ctx context.Context, req *validators.VehicleCreateRequest) (*models.Vehicle, validators.ValidationErrors, error) {
	if errs := validators.ValidateVehicleCreate(req); len(errs) > 0 {
		return nil, errs, nil
	}

	vehicle := &models.Vehicle{
		Brand:        strings.TrimSpace(req.Brand),
		PlateNumber:  strings.ToUpper(strings.TrimSpace(req.PlateNumber)),
		MaxPayloadKg: *req.MaxPayloadKg,
	}

	if err := s.vehicleRepo.Create(ctx, vehicle); err != nil {
		return nil, nil, fmt.Errorf("failed to register vehicle: %w", err)
	}

	s.logger.WithVehicleID(vehicle.ID).
		WithField("event", utils.EventVehicleRegistered).
		WithField("plate_number", vehicle.PlateNumber).
		Info("Vehicle registered")

	return vehicle, nil, nil
}

func (s *vehicleService) GetVehicle(ctx context.Context, id primitive.ObjectID) (*models.Vehicle, error) {
	return s.vehicleRepo.GetByID(ctx, id)
}

func (s *vehicleService) GetVehicleByPlate(ctx context.Context, plateNumber string) (*models.Vehicle, error) {
	return s.vehicleRepo.GetByPlateNumber(ctx, strings.ToUpper(strings.TrimSpace(plateNumber)))
}

func (s *vehicleService) ListVehicles(ctx context.Context) ([]*models.Vehicle, error) {
	vehicles, err := s.vehicleRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list vehicles: %w", err)
	}
	return vehicles, nil
}

func (s *vehicleService) GetVehicleCount(ctx context.Context) (int64, error) {
	return s.vehicleRepo.GetTotalCount(ctx)
}
