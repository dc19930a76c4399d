package ai

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeuristicSuggester_Deterministic(t *testing.T) {
	suggester := NewHeuristicSuggester(500)
	req := &SuggestionRequest{
		GoodsDescription:  "Rice",
		DepartureLocation: "Antananarivo",
		Destination:       "Toamasina",
		WeightKg:          500,
	}

	first, err := suggester.SuggestPrice(context.Background(), req)
	require.NoError(t, err)
	second, err := suggester.SuggestPrice(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first.SuggestedPricePerKg, second.SuggestedPricePerKg)
	assert.NotEmpty(t, first.Reasoning)
}

func TestHeuristicSuggester_PositivePrice(t *testing.T) {
	suggester := NewHeuristicSuggester(0)

	reqs := []*SuggestionRequest{
		{GoodsDescription: "Fragile glassware", DepartureLocation: "A", Destination: "B", WeightKg: 10},
		{GoodsDescription: "Cement bags", DepartureLocation: "Toliara", Destination: "Mahajanga", WeightKg: 30000},
		{GoodsDescription: "Unclassified cargo", DepartureLocation: "X", Destination: "Y", WeightKg: 1},
	}

	for _, req := range reqs {
		resp, err := suggester.SuggestPrice(context.Background(), req)
		require.NoError(t, err)
		assert.Greater(t, resp.SuggestedPricePerKg, 0.0)
	}
}

func TestHeuristicSuggester_GoodsCategoryAdjustment(t *testing.T) {
	suggester := NewHeuristicSuggester(500)

	fragile, err := suggester.SuggestPrice(context.Background(), &SuggestionRequest{
		GoodsDescription: "Fragile electronics", DepartureLocation: "A", Destination: "B", WeightKg: 100,
	})
	require.NoError(t, err)

	bulk, err := suggester.SuggestPrice(context.Background(), &SuggestionRequest{
		GoodsDescription: "Sand", DepartureLocation: "A", Destination: "B", WeightKg: 100,
	})
	require.NoError(t, err)

	assert.Greater(t, fragile.SuggestedPricePerKg, bulk.SuggestedPricePerKg)
}

func TestHeuristicSuggester_InvalidWeight(t *testing.T) {
	suggester := NewHeuristicSuggester(500)

	_, err := suggester.SuggestPrice(context.Background(), &SuggestionRequest{
		GoodsDescription: "Rice", DepartureLocation: "A", Destination: "B", WeightKg: 0,
	})

	assert.ErrorIs(t, err, ErrSuggestionUnavailable)
}

func TestParseSuggestionContent(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr bool
		price   float64
	}{
		{
			name:    "plain json",
			content: `{"suggestedPricePerKg": 450.5, "reasoning": "route premium"}`,
			price:   450.5,
		},
		{
			name:    "fenced json",
			content: "```json\n{\"suggestedPricePerKg\": 300, \"reasoning\": \"bulk goods\"}\n```",
			price:   300,
		},
		{
			name:    "not json",
			content: "I suggest about 450 Ar per kg.",
			wantErr: true,
		},
		{
			name:    "non-positive price",
			content: `{"suggestedPricePerKg": 0, "reasoning": "none"}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			suggestion, err := parseSuggestionContent(tt.content)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrSuggestionUnavailable)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.price, suggestion.SuggestedPricePerKg)
		})
	}
}
