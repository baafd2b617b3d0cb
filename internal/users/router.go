package users

import (
	"github.com/gin-gonic/gin"

	"gatherly/internal/shared/middleware"
)

func RegisterRoutes(rg *gin.RouterGroup, controller Controller, authMiddleware *middleware.AuthMiddleware) {
	me := rg.Group("/me")
	me.Use(authMiddleware.RequireAuth())
	{
		me.GET("/", controller.GetMe)
		me.PUT("/", controller.UpdateMe)
		me.PATCH("/", controller.UpdateMe)
		me.PUT("/update/", controller.UpdateMe)
		me.PATCH("/update/", controller.UpdateMe)
		me.POST("/favorites/:eventId/", controller.ToggleFavorite)
	}
}
