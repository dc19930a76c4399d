package ai

import (
	"context"
	"errors"
)

// ErrSuggestionUnavailable is returned when no usable suggestion could
// be produced. Callers treat it as a soft failure; manual price entry
// always remains possible.
var ErrSuggestionUnavailable = errors.New("price suggestion unavailable")

type SuggestionRequest struct {
	GoodsDescription  string  `json:"goodsDescription"`
	DepartureLocation string  `json:"departureLocation"`
	Destination       string  `json:"destination"`
	WeightKg          float64 `json:"weightKg"`
}

type SuggestionResponse struct {
	SuggestedPricePerKg float64 `json:"suggestedPricePerKg"`
	Reasoning           string  `json:"reasoning"`
}

// PriceSuggester proposes a price per kilogram in Ariary for a planned
// delivery.
type PriceSuggester interface {
	SuggestPrice(ctx context.Context, req *SuggestionRequest) (*SuggestionResponse, error)
}
