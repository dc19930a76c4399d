package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"strings"
	"time"
)

type openAISuggester struct {
	endpoint    string
	apiKey      string
	model       string
	temperature float64
	httpClient  *http.Client
}

// NewOpenAISuggester builds a suggester backed by an OpenAI-compatible
// chat completions endpoint.
func NewOpenAISuggester(endpoint, apiKey, model string, temperature float64, timeout time.Duration) PriceSuggester {
	if timeout <= 0 {
		timeout = 25 * time.Second
	}
	return &openAISuggester{
		endpoint:    strings.TrimRight(endpoint, "/"),
		apiKey:      apiKey,
		model:       model,
		temperature: temperature,
		httpClient:  &http.Client{Timeout: timeout},
	}
}

const suggesterSystemPrompt = "You are a logistics pricing expert for freight transport in Madagascar. " +
	"Prices are in Malagasy Ariary (MGA) per kilogram. Reply ONLY with valid JSON of the form " +
	`{"suggestedPricePerKg": <number>, "reasoning": "<one or two sentences>"}.`

func (s *openAISuggester) SuggestPrice(ctx context.Context, req *SuggestionRequest) (*SuggestionResponse, error) {
	reqBody := map[string]any{
		"model": s.model,
		"messages": []map[string]string{
			{"role": "system", "content": suggesterSystemPrompt},
			{"role": "user", "content": renderSuggestionPrompt(req)},
		},
		"temperature": s.temperature,
	}

	b, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshal suggestion request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint+"/v1/chat/completions", bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("build suggestion request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+s.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSuggestionUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: upstream status %d", ErrSuggestionUnavailable, resp.StatusCode)
	}

	var out struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", ErrSuggestionUnavailable, err)
	}
	if len(out.Choices) == 0 {
		return nil, fmt.Errorf("%w: empty response", ErrSuggestionUnavailable)
	}

	suggestion, err := parseSuggestionContent(out.Choices[0].Message.Content)
	if err != nil {
		return nil, err
	}
	return suggestion, nil
}

// parseSuggestionContent extracts the suggestion JSON from the model
// reply, tolerating markdown code fences around the payload.
func parseSuggestionContent(content string) (*SuggestionResponse, error) {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)

	var suggestion SuggestionResponse
	if err := json.Unmarshal([]byte(content), &suggestion); err != nil {
		return nil, fmt.Errorf("%w: parse reply: %v", ErrSuggestionUnavailable, err)
	}
	if suggestion.SuggestedPricePerKg <= 0 ||
		math.IsNaN(suggestion.SuggestedPricePerKg) || math.IsInf(suggestion.SuggestedPricePerKg, 0) {
		return nil, fmt.Errorf("%w: non-positive suggested price", ErrSuggestionUnavailable)
	}
	return &suggestion, nil
}

func renderSuggestionPrompt(req *SuggestionRequest) string {
	return fmt.Sprintf(`Suggest a fair price per kilogram in Ariary for the following delivery.

Goods: %s
Departure: %s
Destination: %s
Weight: %.2f kg

Consider the type of goods, the route distance and difficulty, and the weight. Reply ONLY with the JSON object.`,
		req.GoodsDescription, req.DepartureLocation, req.Destination, req.WeightKg)
}
