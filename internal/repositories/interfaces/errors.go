package interfaces

import "errors"

// Sentinel errors shared by all repository implementations. Handlers match
// these with errors.Is to pick the response status.
var (
	ErrVehicleNotFound  = errors.New("vehicle not found")
	ErrDeliveryNotFound = errors.New("delivery not found")
	ErrDuplicatePlate   = errors.New("vehicle with this plate number already exists")
)
