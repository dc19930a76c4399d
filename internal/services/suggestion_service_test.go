package services

import (
	"context"
	"errors"
	"testing"

	"logitrack/internal/models"
	"logitrack/pkg/ai"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSuggester struct {
	response *ai.SuggestionResponse
	err      error
	lastReq  *ai.SuggestionRequest
}

func (s *stubSuggester) SuggestPrice(ctx context.Context, req *ai.SuggestionRequest) (*ai.SuggestionResponse, error) {
	s.lastReq = req
	return s.response, s.err
}

func suggestionCandidate() *models.DeliveryCandidate {
	return &models.DeliveryCandidate{
		Goods:             "Rice",
		DepartureLocation: "Antananarivo",
		Destination:       "Toamasina",
		WeightKg:          "500",
	}
}

func TestSuggestPrice_Success(t *testing.T) {
	suggester := &stubSuggester{
		response: &ai.SuggestionResponse{SuggestedPricePerKg: 450, Reasoning: "standard route"},
	}
	svc := NewSuggestionService(suggester, newTestLogger(t))

	suggestion, err := svc.SuggestPrice(context.Background(), suggestionCandidate())

	require.NoError(t, err)
	assert.Equal(t, 450.0, suggestion.SuggestedPricePerKg)
	assert.Equal(t, "standard route", suggestion.Reasoning)

	require.NotNil(t, suggester.lastReq)
	assert.Equal(t, "Rice", suggester.lastReq.GoodsDescription)
	assert.Equal(t, 500.0, suggester.lastReq.WeightKg)
}

func TestSuggestPrice_IncompleteCandidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *models.DeliveryCandidate)
	}{
		{"missing goods", func(c *models.DeliveryCandidate) { c.Goods = "" }},
		{"invalid weight", func(c *models.DeliveryCandidate) { c.WeightKg = "-3" }},
		{"missing departure", func(c *models.DeliveryCandidate) { c.DepartureLocation = "" }},
		{"missing destination", func(c *models.DeliveryCandidate) { c.Destination = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			suggester := &stubSuggester{}
			svc := NewSuggestionService(suggester, newTestLogger(t))

			candidate := suggestionCandidate()
			tt.mutate(candidate)

			suggestion, err := svc.SuggestPrice(context.Background(), candidate)

			assert.Nil(t, suggestion)
			assert.ErrorIs(t, err, ErrSuggestionNotReady)
			assert.Nil(t, suggester.lastReq, "suggester must not be called")
		})
	}
}

func TestSuggestPrice_SuggesterFailure(t *testing.T) {
	suggester := &stubSuggester{err: errors.Join(ai.ErrSuggestionUnavailable, errors.New("timeout"))}
	svc := NewSuggestionService(suggester, newTestLogger(t))

	suggestion, err := svc.SuggestPrice(context.Background(), suggestionCandidate())

	assert.Nil(t, suggestion)
	assert.ErrorIs(t, err, ai.ErrSuggestionUnavailable)
}
