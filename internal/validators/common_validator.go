package validators

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	validate.RegisterValidation("license_plate", validateLicensePlate)
}

// Field error codes surfaced to API clients.
const (
	CodeInvalidDateFormat    = "INVALID_DATE_FORMAT"
	CodeRequiredFieldMissing = "REQUIRED_FIELD_MISSING"
	CodeInvalidWeight        = "INVALID_WEIGHT"
	CodeInvalidPrice         = "INVALID_PRICE"
	CodeVehicleNotFound      = "VEHICLE_NOT_FOUND"
	CodePayloadExceeded      = "PAYLOAD_EXCEEDED"
	CodeInvalidPayload       = "INVALID_PAYLOAD"
)

// ValidationError represents a field validation error
type ValidationError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var messages []string
	for _, err := range v {
		messages = append(messages, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return strings.Join(messages, "; ")
}

// Details flattens the errors into a field -> message map for the response
// envelope. The first error per field wins.
func (v ValidationErrors) Details() map[string]string {
	details := make(map[string]string, len(v))
	for _, err := range v {
		if _, seen := details[err.Field]; !seen {
			details[err.Field] = err.Message
		}
	}
	return details
}

func fieldError(field, code, message string) ValidationErrors {
	return ValidationErrors{{Field: field, Code: code, Message: message}}
}

// ValidateStruct validates a struct's tagged rules and returns detailed errors
func ValidateStruct(s interface{}) ValidationErrors {
	var validationErrors ValidationErrors

	err := validate.Struct(s)
	if err != nil {
		for _, err := range err.(validator.ValidationErrors) {
			validationErrors = append(validationErrors, ValidationError{
				Field:   err.Field(),
				Code:    strings.ToUpper(err.Tag()),
				Message: getErrorMessage(err),
			})
		}
	}

	return validationErrors
}

func getErrorMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", err.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s", err.Field(), err.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", err.Field(), err.Param())
	case "license_plate":
		return "Invalid license plate format"
	default:
		return fmt.Sprintf("Validation failed for %s", err.Field())
	}
}

func validateLicensePlate(fl validator.FieldLevel) bool {
	plate := fl.Field().String()
	if plate == "" {
		return true // Let required tag handle empty values
	}
	return IsValidLicensePlate(plate)
}

// IsValidLicensePlate accepts region-agnostic plates such as "1234 TBA".
func IsValidLicensePlate(plate string) bool {
	plateRegex := regexp.MustCompile(`^[A-Z0-9\-\s]{2,10}$`)
	return plateRegex.MatchString(strings.ToUpper(plate))
}

