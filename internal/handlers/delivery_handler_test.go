package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"logitrack/internal/models"
	"logitrack/internal/repositories/interfaces"
	"logitrack/internal/services"
	"logitrack/internal/utils"
	"logitrack/internal/validators"
	"logitrack/pkg/ai"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type stubDeliveryService struct {
	delivery       *models.Delivery
	validationErrs validators.ValidationErrors
	err            error
}

func (s *stubDeliveryService) LogDelivery(ctx context.Context, candidate *models.DeliveryCandidate) (*models.Delivery, validators.ValidationErrors, error) {
	return s.delivery, s.validationErrs, s.err
}

func (s *stubDeliveryService) GetDelivery(ctx context.Context, id primitive.ObjectID) (*models.Delivery, error) {
	if s.delivery != nil && s.delivery.ID == id {
		return s.delivery, nil
	}
	return nil, interfaces.ErrDeliveryNotFound
}

func (s *stubDeliveryService) ListDeliveries(ctx context.Context) ([]*models.Delivery, error) {
	if s.delivery == nil {
		return nil, nil
	}
	return []*models.Delivery{s.delivery}, nil
}

func (s *stubDeliveryService) DeleteDelivery(ctx context.Context, id primitive.ObjectID) error {
	if s.delivery != nil && s.delivery.ID == id {
		return nil
	}
	return interfaces.ErrDeliveryNotFound
}

func (s *stubDeliveryService) GetDeliveryCount(ctx context.Context) (int64, error) {
	return 0, nil
}

type stubSuggestionService struct {
	suggestion *models.Suggestion
	err        error
}

func (s *stubSuggestionService) SuggestPrice(ctx context.Context, candidate *models.DeliveryCandidate) (*models.Suggestion, error) {
	return s.suggestion, s.err
}

func newDeliveryRouter(deliverySvc *stubDeliveryService, suggestionSvc *stubSuggestionService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewDeliveryHandler(deliverySvc, nil, suggestionSvc)

	router := gin.New()
	router.POST("/deliveries", handler.LogDelivery)
	router.GET("/deliveries/:id", handler.GetDelivery)
	router.DELETE("/deliveries/:id", handler.DeleteDelivery)
	router.POST("/deliveries/suggest-price", handler.SuggestPrice)
	return router
}

func performJSON(t *testing.T, router *gin.Engine, method, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	var body bytes.Buffer
	if payload != nil {
		require.NoError(t, json.NewEncoder(&body).Encode(payload))
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) utils.APIResponse {
	t.Helper()
	var resp utils.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestLogDeliveryHandler(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		delivery := &models.Delivery{ID: primitive.NewObjectID(), Client: "Rakoto", TotalAriary: 200000}
		router := newDeliveryRouter(&stubDeliveryService{delivery: delivery}, &stubSuggestionService{})

		w := performJSON(t, router, http.MethodPost, "/deliveries", models.DeliveryCandidate{Client: "Rakoto"})

		assert.Equal(t, http.StatusCreated, w.Code)
		resp := decodeResponse(t, w)
		assert.Equal(t, "success", resp.Status)
	})

	t.Run("validation errors map to 400 with details", func(t *testing.T) {
		errs := validators.ValidationErrors{{Field: "weightKg", Code: validators.CodeInvalidWeight, Message: "Weight must be a positive number"}}
		router := newDeliveryRouter(&stubDeliveryService{validationErrs: errs}, &stubSuggestionService{})

		w := performJSON(t, router, http.MethodPost, "/deliveries", models.DeliveryCandidate{})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		resp := decodeResponse(t, w)
		require.NotNil(t, resp.Error)
		assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
		assert.Equal(t, "Weight must be a positive number", resp.Error.Details["weightKg"])
	})

	t.Run("malformed body", func(t *testing.T) {
		router := newDeliveryRouter(&stubDeliveryService{}, &stubSuggestionService{})

		req := httptest.NewRequest(http.MethodPost, "/deliveries", bytes.NewBufferString("{not json"))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGetDeliveryHandler(t *testing.T) {
	delivery := &models.Delivery{ID: primitive.NewObjectID(), Client: "Rakoto"}
	router := newDeliveryRouter(&stubDeliveryService{delivery: delivery}, &stubSuggestionService{})

	t.Run("found", func(t *testing.T) {
		w := performJSON(t, router, http.MethodGet, "/deliveries/"+delivery.ID.Hex(), nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing id returns 404", func(t *testing.T) {
		w := performJSON(t, router, http.MethodGet, "/deliveries/"+primitive.NewObjectID().Hex(), nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("malformed id returns 400", func(t *testing.T) {
		w := performJSON(t, router, http.MethodGet, "/deliveries/garbage", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestDeleteDeliveryHandler(t *testing.T) {
	delivery := &models.Delivery{ID: primitive.NewObjectID()}
	router := newDeliveryRouter(&stubDeliveryService{delivery: delivery}, &stubSuggestionService{})

	w := performJSON(t, router, http.MethodDelete, "/deliveries/"+delivery.ID.Hex(), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = performJSON(t, router, http.MethodDelete, "/deliveries/"+primitive.NewObjectID().Hex(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSuggestPriceHandler(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		suggestion := &models.Suggestion{SuggestedPricePerKg: 450, Reasoning: "standard route"}
		router := newDeliveryRouter(&stubDeliveryService{}, &stubSuggestionService{suggestion: suggestion})

		w := performJSON(t, router, http.MethodPost, "/deliveries/suggest-price", models.DeliveryCandidate{Goods: "Rice"})

		assert.Equal(t, http.StatusOK, w.Code)
		resp := decodeResponse(t, w)
		assert.Equal(t, "success", resp.Status)
	})

	t.Run("incomplete candidate maps to 400", func(t *testing.T) {
		router := newDeliveryRouter(&stubDeliveryService{}, &stubSuggestionService{err: services.ErrSuggestionNotReady})

		w := performJSON(t, router, http.MethodPost, "/deliveries/suggest-price", models.DeliveryCandidate{})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unavailable suggestion maps to 502", func(t *testing.T) {
		router := newDeliveryRouter(&stubDeliveryService{}, &stubSuggestionService{err: ai.ErrSuggestionUnavailable})

		w := performJSON(t, router, http.MethodPost, "/deliveries/suggest-price", models.DeliveryCandidate{})

		assert.Equal(t, http.StatusBadGateway, w.Code)
		resp := decodeResponse(t, w)
		require.NotNil(t, resp.Error)
		assert.Equal(t, "SUGGESTION_UNAVAILABLE", resp.Error.Code)
	})
}
