package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DateLayout is the canonical textual form of a delivery date.
const DateLayout = "2006-01-02"

// Delivery is a persisted shipment record. TotalAriary is derived from
// WeightKg and PricePerKg by the validation engine and is never taken
// from client input.
type Delivery struct {
	ID                primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Date              string             `json:"date" bson:"date"`
	Client            string             `json:"client" bson:"client"`
	DepartureLocation string             `json:"departureLocation" bson:"departure_location"`
	Destination       string             `json:"destination" bson:"destination"`
	Goods             string             `json:"goods" bson:"goods"`
	WeightKg          float64            `json:"weightKg" bson:"weight_kg"`
	PricePerKg        float64            `json:"pricePerKg" bson:"price_per_kg"`
	TotalAriary       float64            `json:"totalAriary" bson:"total_ariary"`
	VehicleID         primitive.ObjectID `json:"vehicleId" bson:"vehicle_id"`
	CreatedAt         time.Time          `json:"createdAt" bson:"created_at"`
	UpdatedAt         time.Time          `json:"updatedAt" bson:"updated_at"`
}

// DeliveryCandidate carries raw user-entered form fields before validation.
// Numeric fields arrive as strings so that coercion failures can be reported
// per field instead of failing JSON decoding.
type DeliveryCandidate struct {
	Date              string `json:"date"`
	Client            string `json:"client"`
	DepartureLocation string `json:"departureLocation"`
	Destination       string `json:"destination"`
	Goods             string `json:"goods"`
	WeightKg          string `json:"weightKg"`
	PricePerKg        string `json:"pricePerKg"`
	TotalAriary       string `json:"totalAriary"`
	VehicleID         string `json:"vehicleId"`
}

// Suggestion is the ephemeral result of a price suggestion request. It is
// never persisted; an accepted suggestion is copied into PricePerKg.
type Suggestion struct {
	SuggestedPricePerKg float64 `json:"suggestedPricePerKg"`
	Reasoning           string  `json:"reasoning"`
}
