package validators

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"logitrack/internal/models"
)

// ComputeTotal derives the total charge in Ariary from weight and unit
// price, rounded to two decimal places.
func ComputeTotal(weightKg, pricePerKg float64) float64 {
	return math.Round(weightKg*pricePerKg*100) / 100
}

// ValidateAndPrepare checks a raw candidate against the form and capacity
// rules and returns a delivery ready for persistence. Rules run fail-fast:
// the first failing field wins and maps to a single field-level error.
//
// The vehicle is the record referenced by candidate.VehicleID, resolved by
// the caller; nil means the lookup failed and reports VEHICLE_NOT_FOUND.
// TotalAriary is always recomputed from weight and price. A total supplied
// on the candidate is discarded, so a tampering or stale client can never
// persist an inconsistent charge.
func ValidateAndPrepare(candidate *models.DeliveryCandidate, vehicle *models.Vehicle) (*models.Delivery, ValidationErrors) {
	if !isValidDate(candidate.Date) {
		return nil, fieldError("date", CodeInvalidDateFormat, "Date must be a valid calendar date in YYYY-MM-DD format")
	}

	requiredFields := []struct {
		name  string
		value string
	}{
		{"client", candidate.Client},
		{"departureLocation", candidate.DepartureLocation},
		{"destination", candidate.Destination},
		{"goods", candidate.Goods},
	}
	for _, f := range requiredFields {
		if strings.TrimSpace(f.value) == "" {
			return nil, fieldError(f.name, CodeRequiredFieldMissing, fmt.Sprintf("%s is required", f.name))
		}
	}

	weight, ok := coercePositive(candidate.WeightKg)
	if !ok {
		return nil, fieldError("weightKg", CodeInvalidWeight, "Weight must be a positive number")
	}

	price, ok := coercePositive(candidate.PricePerKg)
	if !ok {
		return nil, fieldError("pricePerKg", CodeInvalidPrice, "Price per kg must be a positive number")
	}

	if vehicle == nil {
		return nil, fieldError("vehicleId", CodeVehicleNotFound, "Selected vehicle not found")
	}

	if weight > vehicle.MaxPayloadKg {
		return nil, fieldError("weightKg", CodePayloadExceeded, fmt.Sprintf(
			"Delivery weight (%skg) exceeds maximum payload (%skg) of %s",
			formatKg(weight), formatKg(vehicle.MaxPayloadKg), vehicle.Label()))
	}

	return &models.Delivery{
		Date:              candidate.Date,
		Client:            strings.TrimSpace(candidate.Client),
		DepartureLocation: strings.TrimSpace(candidate.DepartureLocation),
		Destination:       strings.TrimSpace(candidate.Destination),
		Goods:             strings.TrimSpace(candidate.Goods),
		WeightKg:          weight,
		PricePerKg:        price,
		TotalAriary:       ComputeTotal(weight, price),
		VehicleID:         vehicle.ID,
	}, nil
}

// ApplySuggestion copies a suggested price into the in-progress candidate
// and recomputes its total. It reports whether anything was applied; the
// user still has to confirm the form.
func ApplySuggestion(candidate *models.DeliveryCandidate, suggestion *models.Suggestion) bool {
	if suggestion == nil || suggestion.SuggestedPricePerKg <= 0 {
		return false
	}

	candidate.PricePerKg = strconv.FormatFloat(suggestion.SuggestedPricePerKg, 'f', -1, 64)
	if weight, ok := coercePositive(candidate.WeightKg); ok {
		total := ComputeTotal(weight, suggestion.SuggestedPricePerKg)
		candidate.TotalAriary = strconv.FormatFloat(total, 'f', -1, 64)
	}
	return true
}

// CanSuggestPrice gates the price suggestion action: the model needs the
// goods description, a positive weight, and both endpoints of the route.
func CanSuggestPrice(candidate *models.DeliveryCandidate) bool {
	if strings.TrimSpace(candidate.Goods) == "" {
		return false
	}
	if _, ok := coercePositive(candidate.WeightKg); !ok {
		return false
	}
	return strings.TrimSpace(candidate.DepartureLocation) != "" &&
		strings.TrimSpace(candidate.Destination) != ""
}

// CoerceWeight parses a raw weight field. It reports false for anything
// that is not a finite positive number.
func CoerceWeight(value string) (float64, bool) {
	return coercePositive(value)
}

func isValidDate(value string) bool {
	if len(value) != len(models.DateLayout) {
		return false
	}
	_, err := time.Parse(models.DateLayout, value)
	return err == nil
}

func coercePositive(value string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f <= 0 {
		return 0, false
	}
	return f, true
}

func formatKg(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
