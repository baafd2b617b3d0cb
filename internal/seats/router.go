package seats

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(rg *gin.RouterGroup, controller Controller) {
	rg.GET("/events/:eventId/reserved-seats/", controller.GetReservedSeats)
}
