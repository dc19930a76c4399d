package utils

// Application Constants
const (
	AppName    = "LogiTrack"
	AppVersion = "1.0.0"

	// Dashboard pagination; the delivery table shows a fixed page of 10
	DashboardPageSize = 10
)

// HTTP Status Messages
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Error Messages
const (
	ErrInternalServer   = "internal server error"
	ErrValidationFailed = "validation failed"
	ErrSuggestionFailed = "price suggestion unavailable"
)

// Sortable dashboard columns
const (
	SortColumnDate              = "date"
	SortColumnClient            = "client"
	SortColumnDepartureLocation = "departureLocation"
	SortColumnDestination       = "destination"
	SortColumnGoods             = "goods"
	SortColumnWeightKg          = "weightKg"
	SortColumnPricePerKg        = "pricePerKg"
	SortColumnTotalAriary       = "totalAriary"
)

// Event Types
const (
	EventVehicleRegistered = "vehicle_registered"
	EventDeliveryLogged    = "delivery_logged"
	EventDeliveryDeleted   = "delivery_deleted"
	EventPriceSuggested    = "price_suggested"
)
