package bookings

import (
	"github.com/gin-gonic/gin"

	"gatherly/internal/shared/middleware"
	"gatherly/internal/users"
)

func RegisterRoutes(rg *gin.RouterGroup, controller Controller, authMiddleware *middleware.AuthMiddleware) {
	group := rg.Group("/bookings")
	group.Use(authMiddleware.RequireAuth())
	{
		group.POST("/", controller.Create)
		group.GET("/get/", controller.MyBookings)
		group.GET("/:bookingId/", controller.Get)
		group.POST("/:bookingId/cancel/", controller.Cancel)

		group.GET("/", authMiddleware.RequireRole(string(users.RoleAdmin)), controller.List)
	}
}
