package auth

import (
	"github.com/gin-gonic/gin"

	"gatherly/internal/shared/middleware"
)

func RegisterRoutes(rg *gin.RouterGroup, controller Controller, authMiddleware *middleware.AuthMiddleware) {
	rg.POST("/register/", controller.Register)
	rg.POST("/login/", controller.Login)
	rg.POST("/token/refresh/", controller.Refresh)

	rg.POST("/change-password/", authMiddleware.RequireAuth(), controller.ChangePassword)
}
