package validators

import (
	"strings"
)

type VehicleCreateRequest struct {
	Brand        string   `json:"brand" validate:"required"`
	PlateNumber  string   `json:"plateNumber" validate:"required,license_plate"`
	MaxPayloadKg *float64 `json:"maxPayloadKg" validate:"required"`
}

// ValidateVehicleCreate applies the registration rules: brand and plate are
// required non-blank strings, the plate must look like a plate, and the
// payload capacity must be present and non-negative.
func ValidateVehicleCreate(req *VehicleCreateRequest) ValidationErrors {
	errors := ValidateStruct(req)

	if req.Brand != "" && strings.TrimSpace(req.Brand) == "" {
		errors = append(errors, ValidationError{
			Field:   "brand",
			Code:    CodeRequiredFieldMissing,
			Message: "Vehicle brand is required",
		})
	}

	if req.PlateNumber != "" && strings.TrimSpace(req.PlateNumber) == "" {
		errors = append(errors, ValidationError{
			Field:   "plateNumber",
			Code:    CodeRequiredFieldMissing,
			Message: "Vehicle plate number is required",
		})
	}

	if req.MaxPayloadKg != nil && *req.MaxPayloadKg < 0 {
		errors = append(errors, ValidationError{
			Field:   "maxPayloadKg",
			Code:    CodeInvalidPayload,
			Message: "Maximum payload cannot be negative",
		})
	}

	return errors
}
