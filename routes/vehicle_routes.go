package routes

import (
	"logitrack/internal/handlers"

	"github.com/gin-gonic/gin"
)

// SetupVehicleRoutes sets up routes for vehicle registration and lookup
func SetupVehicleRoutes(r *gin.RouterGroup, vehicleHandler *handlers.VehicleHandler) {
	vehicles := r.Group("/vehicles")
	{
		vehicles.POST("", vehicleHandler.RegisterVehicle)
		vehicles.GET("", vehicleHandler.ListVehicles)
		vehicles.GET("/:id", vehicleHandler.GetVehicle)
	}
}
