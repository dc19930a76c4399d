package services

import (
	"context"
	"strings"
	"testing"

	"logitrack/internal/models"
	"logitrack/internal/repositories/interfaces"
	"logitrack/internal/validators"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeVehicleRepo struct {
	vehicles map[primitive.ObjectID]*models.Vehicle
}

func newFakeVehicleRepo() *fakeVehicleRepo {
	return &fakeVehicleRepo{vehicles: make(map[primitive.ObjectID]*models.Vehicle)}
}

func (r *fakeVehicleRepo) Create(ctx context.Context, vehicle *models.Vehicle) error {
	for _, v := range r.vehicles {
		if v.PlateNumber == vehicle.PlateNumber {
			return interfaces.ErrDuplicatePlate
		}
	}
	vehicle.ID = primitive.NewObjectID()
	r.vehicles[vehicle.ID] = vehicle
	return nil
}

func (r *fakeVehicleRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Vehicle, error) {
	if v, ok := r.vehicles[id]; ok {
		return v, nil
	}
	return nil, interfaces.ErrVehicleNotFound
}

func (r *fakeVehicleRepo) GetByPlateNumber(ctx context.Context, plate string) (*models.Vehicle, error) {
	for _, v := range r.vehicles {
		if v.PlateNumber == plate {
			return v, nil
		}
	}
	return nil, interfaces.ErrVehicleNotFound
}

func (r *fakeVehicleRepo) List(ctx context.Context) ([]*models.Vehicle, error) {
	var out []*models.Vehicle
	for _, v := range r.vehicles {
		out = append(out, v)
	}
	return out, nil
}

func (r *fakeVehicleRepo) GetTotalCount(ctx context.Context) (int64, error) {
	return int64(len(r.vehicles)), nil
}

type fakeDeliveryRepo struct {
	deliveries []*models.Delivery
}

func (r *fakeDeliveryRepo) Create(ctx context.Context, delivery *models.Delivery) error {
	delivery.ID = primitive.NewObjectID()
	r.deliveries = append(r.deliveries, delivery)
	return nil
}

func (r *fakeDeliveryRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Delivery, error) {
	for _, d := range r.deliveries {
		if d.ID == id {
			return d, nil
		}
	}
	return nil, interfaces.ErrDeliveryNotFound
}

func (r *fakeDeliveryRepo) List(ctx context.Context) ([]*models.Delivery, error) {
	return r.deliveries, nil
}

func (r *fakeDeliveryRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	for i, d := range r.deliveries {
		if d.ID == id {
			r.deliveries = append(r.deliveries[:i], r.deliveries[i+1:]...)
			return nil
		}
	}
	return interfaces.ErrDeliveryNotFound
}

func (r *fakeDeliveryRepo) GetTotalCount(ctx context.Context) (int64, error) {
	return int64(len(r.deliveries)), nil
}

func seedVehicle(t *testing.T, repo *fakeVehicleRepo) *models.Vehicle {
	t.Helper()
	vehicle := &models.Vehicle{Brand: "Toyota", PlateNumber: "1234 TBA", MaxPayloadKg: 1000}
	require.NoError(t, repo.Create(context.Background(), vehicle))
	return vehicle
}

func deliveryCandidate(vehicleID string) *models.DeliveryCandidate {
	return &models.DeliveryCandidate{
		Date:              "2026-08-15",
		Client:            "Rakoto",
		DepartureLocation: "Antananarivo",
		Destination:       "Toamasina",
		Goods:             "Rice",
		WeightKg:          "500",
		PricePerKg:        "400",
		VehicleID:         vehicleID,
	}
}

func TestLogDelivery_Success(t *testing.T) {
	vehicleRepo := newFakeVehicleRepo()
	deliveryRepo := &fakeDeliveryRepo{}
	vehicle := seedVehicle(t, vehicleRepo)
	svc := NewDeliveryService(deliveryRepo, vehicleRepo, newTestLogger(t))

	delivery, errs, err := svc.LogDelivery(context.Background(), deliveryCandidate(vehicle.ID.Hex()))

	require.NoError(t, err)
	require.Empty(t, errs)
	require.NotNil(t, delivery)
	assert.False(t, delivery.ID.IsZero())
	assert.Equal(t, 200000.0, delivery.TotalAriary)
	assert.Equal(t, vehicle.ID, delivery.VehicleID)
	assert.Len(t, deliveryRepo.deliveries, 1)
}

func TestLogDelivery_UnknownVehicle(t *testing.T) {
	vehicleRepo := newFakeVehicleRepo()
	svc := NewDeliveryService(&fakeDeliveryRepo{}, vehicleRepo, newTestLogger(t))

	t.Run("missing id", func(t *testing.T) {
		delivery, errs, err := svc.LogDelivery(context.Background(), deliveryCandidate(primitive.NewObjectID().Hex()))

		require.NoError(t, err)
		assert.Nil(t, delivery)
		require.Len(t, errs, 1)
		assert.Equal(t, "vehicleId", errs[0].Field)
		assert.Equal(t, validators.CodeVehicleNotFound, errs[0].Code)
	})

	t.Run("malformed id", func(t *testing.T) {
		delivery, errs, err := svc.LogDelivery(context.Background(), deliveryCandidate("not-an-object-id"))

		require.NoError(t, err)
		assert.Nil(t, delivery)
		require.Len(t, errs, 1)
		assert.Equal(t, "vehicleId", errs[0].Field)
	})
}

func TestLogDelivery_ValidationFailureDoesNotPersist(t *testing.T) {
	vehicleRepo := newFakeVehicleRepo()
	deliveryRepo := &fakeDeliveryRepo{}
	vehicle := seedVehicle(t, vehicleRepo)
	svc := NewDeliveryService(deliveryRepo, vehicleRepo, newTestLogger(t))

	candidate := deliveryCandidate(vehicle.ID.Hex())
	candidate.WeightKg = "1500"

	delivery, errs, err := svc.LogDelivery(context.Background(), candidate)

	require.NoError(t, err)
	assert.Nil(t, delivery)
	require.Len(t, errs, 1)
	assert.Equal(t, validators.CodePayloadExceeded, errs[0].Code)
	assert.Empty(t, deliveryRepo.deliveries)
}

func TestDeleteDelivery(t *testing.T) {
	vehicleRepo := newFakeVehicleRepo()
	deliveryRepo := &fakeDeliveryRepo{}
	vehicle := seedVehicle(t, vehicleRepo)
	svc := NewDeliveryService(deliveryRepo, vehicleRepo, newTestLogger(t))

	delivery, _, err := svc.LogDelivery(context.Background(), deliveryCandidate(vehicle.ID.Hex()))
	require.NoError(t, err)

	require.NoError(t, svc.DeleteDelivery(context.Background(), delivery.ID))
	assert.Empty(t, deliveryRepo.deliveries)

	err = svc.DeleteDelivery(context.Background(), delivery.ID)
	assert.ErrorIs(t, err, interfaces.ErrDeliveryNotFound)
}

func TestRegisterVehicle(t *testing.T) {
	vehicleRepo := newFakeVehicleRepo()
	svc := NewVehicleService(vehicleRepo, newTestLogger(t))

	payload := 1000.0
	request := &validators.VehicleCreateRequest{
		Brand:        "Toyota",
		PlateNumber:  "1234 tba",
		MaxPayloadKg: &payload,
	}

	vehicle, errs, err := svc.RegisterVehicle(context.Background(), request)

	require.NoError(t, err)
	require.Empty(t, errs)
	assert.Equal(t, "1234 TBA", vehicle.PlateNumber, "plate is normalized to uppercase")
	assert.Equal(t, 1000.0, vehicle.MaxPayloadKg)

	t.Run("duplicate plate is rejected", func(t *testing.T) {
		_, errs, err := svc.RegisterVehicle(context.Background(), request)
		assert.Empty(t, errs)
		assert.ErrorIs(t, err, interfaces.ErrDuplicatePlate)
	})

	t.Run("invalid request returns field errors", func(t *testing.T) {
		vehicle, errs, err := svc.RegisterVehicle(context.Background(), &validators.VehicleCreateRequest{})
		require.NoError(t, err)
		assert.Nil(t, vehicle)
		assert.True(t, len(errs) >= 1)
		assert.True(t, strings.Contains(errs.Error(), "required"))
	})
}
