package events

import (
	"github.com/gin-gonic/gin"

	"gatherly/internal/shared/middleware"
)

func RegisterRoutes(rg *gin.RouterGroup, controller Controller, authMiddleware *middleware.AuthMiddleware) {
	eventsGroup := rg.Group("/events")
	{
		eventsGroup.GET("/", authMiddleware.OptionalAuth(), controller.List)
		eventsGroup.GET("/:eventId/", controller.Get)

		eventsGroup.POST("/", authMiddleware.RequireAuth(), controller.Create)
		eventsGroup.POST("/create/", authMiddleware.RequireAuth(), controller.Create)
		eventsGroup.PUT("/:eventId/", authMiddleware.RequireAuth(), controller.Update)
		eventsGroup.DELETE("/:eventId/", authMiddleware.RequireAuth(), controller.Delete)
		eventsGroup.DELETE("/delete/:eventId/", authMiddleware.RequireAuth(), controller.Delete)
	}
}
