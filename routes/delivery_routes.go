package routes

import (
	"logitrack/internal/handlers"

	"github.com/gin-gonic/gin"
)

// SetupDeliveryRoutes sets up routes for delivery logging, reporting and
// price suggestion
func SetupDeliveryRoutes(r *gin.RouterGroup, deliveryHandler *handlers.DeliveryHandler) {
	deliveries := r.Group("/deliveries")
	{
		deliveries.POST("", deliveryHandler.LogDelivery)
		deliveries.GET("", deliveryHandler.GetDashboard)
		deliveries.GET("/:id", deliveryHandler.GetDelivery)
		deliveries.DELETE("/:id", deliveryHandler.DeleteDelivery)

		deliveries.POST("/suggest-price", deliveryHandler.SuggestPrice)
	}
}
