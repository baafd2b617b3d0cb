package discovery

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(rg *gin.RouterGroup, controller Controller) {
	rg.GET("/events/search/", controller.Search)
}
