package models

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Vehicle is a registered transport vehicle. Records are immutable after
// creation; deliveries reference them by id for payload capacity checks.
type Vehicle struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Brand        string             `json:"brand" bson:"brand" validate:"required"`
	PlateNumber  string             `json:"plateNumber" bson:"plate_number" validate:"required"`
	MaxPayloadKg float64            `json:"maxPayloadKg" bson:"max_payload_kg" validate:"min=0"`
	CreatedAt    time.Time          `json:"createdAt" bson:"created_at"`
	UpdatedAt    time.Time          `json:"updatedAt" bson:"updated_at"`
}

// Label is the display form used in capacity error messages.
func (v *Vehicle) Label() string {
	return fmt.Sprintf("%s (%s)", v.Brand, v.PlateNumber)
}
