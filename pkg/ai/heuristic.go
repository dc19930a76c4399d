package ai

import (
	"context"
	"fmt"
	"hash/fnv"
	"math"
	"strings"
)

type heuristicSuggester struct {
	basePricePerKg float64
}

// NewHeuristicSuggester builds a deterministic suggester used when no
// external model is configured. It prices from a base rate adjusted by
// goods category, route variation and weight discounts.
func NewHeuristicSuggester(basePricePerKg float64) PriceSuggester {
	if basePricePerKg <= 0 {
		basePricePerKg = 500
	}
	return &heuristicSuggester{basePricePerKg: basePricePerKg}
}

var goodsCategoryFactors = []struct {
	keyword string
	factor  float64
}{
	{"fragile", 1.6},
	{"glass", 1.6},
	{"electronic", 1.5},
	{"frozen", 1.45},
	{"perishable", 1.4},
	{"furniture", 1.2},
	{"rice", 0.9},
	{"maize", 0.9},
	{"grain", 0.9},
	{"cement", 0.8},
	{"sand", 0.7},
	{"gravel", 0.7},
}

func (s *heuristicSuggester) SuggestPrice(ctx context.Context, req *SuggestionRequest) (*SuggestionResponse, error) {
	if req.WeightKg <= 0 {
		return nil, fmt.Errorf("%w: weight must be positive", ErrSuggestionUnavailable)
	}

	price := s.basePricePerKg

	factor, category := goodsFactor(req.GoodsDescription)
	price *= factor

	// Route variation keeps distinct routes from all pricing identically
	// while staying stable for a given pair.
	price *= 0.9 + 0.2*routeVariation(req.DepartureLocation, req.Destination)

	// Bulk shipments earn a discount, capped at 25%.
	discount := math.Min(0.25, req.WeightKg/40000)
	price *= 1 - discount

	price = math.Round(price*100) / 100

	reasoning := fmt.Sprintf("Base rate of %.0f Ar/kg adjusted for the route from %s to %s and a %.0f kg load.",
		s.basePricePerKg, req.DepartureLocation, req.Destination, req.WeightKg)
	if category != "" {
		reasoning = fmt.Sprintf("%s Goods matching %q carry a %.0f%% rate adjustment.",
			reasoning, category, (factor-1)*100)
	}

	return &SuggestionResponse{
		SuggestedPricePerKg: price,
		Reasoning:           reasoning,
	}, nil
}

func goodsFactor(description string) (float64, string) {
	lowered := strings.ToLower(description)
	for _, c := range goodsCategoryFactors {
		if strings.Contains(lowered, c.keyword) {
			return c.factor, c.keyword
		}
	}
	return 1.0, ""
}

// routeVariation maps a departure/destination pair onto [0, 1).
func routeVariation(departure, destination string) float64 {
	h := fnv.New32a()
	h.Write([]byte(strings.ToLower(strings.TrimSpace(departure))))
	h.Write([]byte{'|'})
	h.Write([]byte(strings.ToLower(strings.TrimSpace(destination))))
	return float64(h.Sum32()%1000) / 1000
}
