package handlers

import (
	"errors"

	"logitrack/internal/models"
	"logitrack/internal/repositories/interfaces"
	"logitrack/internal/services"
	"logitrack/internal/utils"
	"logitrack/pkg/ai"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type DeliveryHandler struct {
	deliveryService   services.DeliveryService
	reportService     services.ReportService
	suggestionService services.SuggestionService
}

func NewDeliveryHandler(
	deliveryService services.DeliveryService,
	reportService services.ReportService,
	suggestionService services.SuggestionService,
) *DeliveryHandler {
	return &DeliveryHandler{
		deliveryService:   deliveryService,
		reportService:     reportService,
		suggestionService: suggestionService,
	}
}

// LogDelivery records a new delivery after validation
func (h *DeliveryHandler) LogDelivery(c *gin.Context) {
	var candidate models.DeliveryCandidate
	if err := c.ShouldBindJSON(&candidate); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	delivery, validationErrs, err := h.deliveryService.LogDelivery(c.Request.Context(), &candidate)
	if len(validationErrs) > 0 {
		utils.ValidationErrorResponse(c, validationErrs.Details())
		return
	}
	if err != nil {
		utils.InternalServerErrorResponse(c)
		return
	}

	utils.CreatedResponse(c, "Delivery logged successfully", delivery)
}

// GetDashboard returns a filtered, sorted and paginated delivery report
func (h *DeliveryHandler) GetDashboard(c *gin.Context) {
	query := utils.ParseReportQuery(c)

	view, err := h.reportService.BuildView(c.Request.Context(), query)
	if err != nil {
		utils.InternalServerErrorResponse(c)
		return
	}

	utils.SuccessResponseWithMeta(c, "Deliveries retrieved successfully", view.Deliveries, &utils.Meta{
		Pagination: view.Pagination,
		Totals:     view.Totals,
	})
}

// GetDelivery retrieves a single delivery by id
func (h *DeliveryHandler) GetDelivery(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid delivery ID")
		return
	}

	delivery, err := h.deliveryService.GetDelivery(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, interfaces.ErrDeliveryNotFound) {
			utils.NotFoundResponse(c, "Delivery")
			return
		}
		utils.InternalServerErrorResponse(c)
		return
	}

	utils.SuccessResponse(c, "Delivery retrieved successfully", delivery)
}

// DeleteDelivery removes a delivery permanently
func (h *DeliveryHandler) DeleteDelivery(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid delivery ID")
		return
	}

	if err := h.deliveryService.DeleteDelivery(c.Request.Context(), id); err != nil {
		if errors.Is(err, interfaces.ErrDeliveryNotFound) {
			utils.NotFoundResponse(c, "Delivery")
			return
		}
		utils.InternalServerErrorResponse(c)
		return
	}

	utils.SuccessResponse(c, "Delivery deleted successfully", nil)
}

// SuggestPrice proposes a price per kg for an in-progress delivery form.
// A failed suggestion never blocks manual price entry.
func (h *DeliveryHandler) SuggestPrice(c *gin.Context) {
	var candidate models.DeliveryCandidate
	if err := c.ShouldBindJSON(&candidate); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	suggestion, err := h.suggestionService.SuggestPrice(c.Request.Context(), &candidate)
	if err != nil {
		if errors.Is(err, services.ErrSuggestionNotReady) {
			utils.BadRequestResponse(c, err.Error())
			return
		}
		if errors.Is(err, ai.ErrSuggestionUnavailable) {
			utils.BadGatewayResponse(c, "SUGGESTION_UNAVAILABLE", utils.ErrSuggestionFailed)
			return
		}
		utils.InternalServerErrorResponse(c)
		return
	}

	utils.SuccessResponse(c, "Price suggested successfully", suggestion)
}
