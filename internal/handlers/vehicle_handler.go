package handlers

import (
	"errors"

	"logitrack/internal/repositories/interfaces"
	"logitrack/internal/services"
	"logitrack/internal/utils"
	"logitrack/internal/validators"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type VehicleHandler struct {
	vehicleService services.VehicleService
}

func NewVehicleHandler(vehicleService services.VehicleService) *VehicleHandler {
	return &VehicleHandler{
		vehicleService: vehicleService,
	}
}

// RegisterVehicle creates a new vehicle from the registration form
func (h *VehicleHandler) RegisterVehicle(c *gin.Context) {
	var request validators.VehicleCreateRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	vehicle, validationErrs, err := h.vehicleService.RegisterVehicle(c.Request.Context(), &request)
	if len(validationErrs) > 0 {
		utils.ValidationErrorResponse(c, validationErrs.Details())
		return
	}
	if err != nil {
		if errors.Is(err, interfaces.ErrDuplicatePlate) {
			utils.ConflictResponse(c, "A vehicle with this plate number is already registered")
			return
		}
		utils.InternalServerErrorResponse(c)
		return
	}

	utils.CreatedResponse(c, "Vehicle registered successfully", vehicle)
}

// GetVehicle retrieves a single vehicle by id
func (h *VehicleHandler) GetVehicle(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid vehicle ID")
		return
	}

	vehicle, err := h.vehicleService.GetVehicle(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, interfaces.ErrVehicleNotFound) {
			utils.NotFoundResponse(c, "Vehicle")
			return
		}
		utils.InternalServerErrorResponse(c)
		return
	}

	utils.SuccessResponse(c, "Vehicle retrieved successfully", vehicle)
}

// ListVehicles returns all registered vehicles in creation order. A
// plate query param narrows the list to the matching vehicle.
func (h *VehicleHandler) ListVehicles(c *gin.Context) {
	if plate := c.Query("plate"); plate != "" {
		vehicle, err := h.vehicleService.GetVehicleByPlate(c.Request.Context(), plate)
		if err != nil {
			if errors.Is(err, interfaces.ErrVehicleNotFound) {
				utils.NotFoundResponse(c, "Vehicle")
				return
			}
			utils.InternalServerErrorResponse(c)
			return
		}
		utils.SuccessResponse(c, "Vehicle retrieved successfully", vehicle)
		return
	}

	vehicles, err := h.vehicleService.ListVehicles(c.Request.Context())
	if err != nil {
		utils.InternalServerErrorResponse(c)
		return
	}

	utils.SuccessResponseWithMeta(c, "Vehicles retrieved successfully", vehicles, &utils.Meta{
		Count: len(vehicles),
	})
}
