package services

import (
	"context"
	"errors"

	"logitrack/internal/models"
	"logitrack/internal/utils"
	"logitrack/internal/validators"
	"logitrack/pkg/ai"
	"logitrack/pkg/logger"
)

// ErrSuggestionNotReady marks a candidate that lacks the fields a price
// suggestion needs. Distinct from ai.ErrSuggestionUnavailable, which
// marks a collaborator failure.
var ErrSuggestionNotReady = errors.New("goods, weight, departure and destination are required for a price suggestion")

type SuggestionService interface {
	// SuggestPrice proposes a price per kg for an in-progress candidate.
	// Returns ErrSuggestionNotReady for an incomplete candidate and
	// ai.ErrSuggestionUnavailable when no suggestion could be produced.
	SuggestPrice(ctx context.Context, candidate *models.DeliveryCandidate) (*models.Suggestion, error)
}

type suggestionService struct {
	suggester ai.PriceSuggester
	logger    *logger.Logger
}

func NewSuggestionService(suggester ai.PriceSuggester, logger *logger.Logger) SuggestionService {
	return &suggestionService{
		suggester: suggester,
		logger:    logger,
	}
}

func (s *suggestionService) SuggestPrice(ctx context.Context, candidate *models.DeliveryCandidate) (*models.Suggestion, error) {
	if !validators.CanSuggestPrice(candidate) {
		return nil, ErrSuggestionNotReady
	}

	weight, _ := validators.CoerceWeight(candidate.WeightKg)

	result, err := s.suggester.SuggestPrice(ctx, &ai.SuggestionRequest{
		GoodsDescription:  candidate.Goods,
		DepartureLocation: candidate.DepartureLocation,
		Destination:       candidate.Destination,
		WeightKg:          weight,
	})
	if err != nil {
		s.logger.WithError(err).Warn("Price suggestion failed")
		return nil, err
	}

	s.logger.WithFields(map[string]interface{}{
		"event":            utils.EventPriceSuggested,
		"goods":            candidate.Goods,
		"weight_kg":        weight,
		"suggested_per_kg": result.SuggestedPricePerKg,
	}).Info("Price suggested")

	return &models.Suggestion{
		SuggestedPricePerKg: result.SuggestedPricePerKg,
		Reasoning:           result.Reasoning,
	}, nil
}
