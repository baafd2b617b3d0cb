package uploads

import (
	"github.com/gin-gonic/gin"

	"gatherly/internal/shared/middleware"
)

func RegisterRoutes(rg *gin.RouterGroup, controller Controller, authMiddleware *middleware.AuthMiddleware) {
	rg.POST("/upload/", authMiddleware.RequireAuth(), controller.UploadImage)
}
