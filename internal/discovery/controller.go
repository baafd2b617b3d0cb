package discovery

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"gatherly/internal/events"
	"gatherly/internal/shared/constants"
	"gatherly/internal/shared/utils/response"
	"gatherly/pkg/cache"
	"gatherly/pkg/logger"
)

type Controller interface {
	Search(c *gin.Context)
}

type controller struct {
	eventService events.Service
	cache        cache.Service
	log          *logger.Logger
}

func NewController(eventService events.Service, cacheService cache.Service, log *logger.Logger) Controller {
	return &controller{eventService: eventService, cache: cacheService, log: log}
}

// Search runs the browse pipeline over published events:
// ?q=, ?category=, ?max_price=, ?city=, ?date=, ?sort=.
func (ctrl *controller) Search(c *gin.Context) {
	query := Query{
		Filters: Filters{
			Category: c.Query("category"),
			City:     c.Query("city"),
			Date:     c.Query("date"),
		},
		Search:  c.Query("q"),
		SortKey: c.DefaultQuery("sort", SortDate),
	}
	if raw := c.Query("max_price"); raw != "" {
		price, err := strconv.ParseFloat(raw, 64)
		if err != nil || price < 0 {
			response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid max_price", nil, nil)
			return
		}
		query.Filters.MaxPrice = price
	}
	if raw := c.Query("date"); raw != "" {
		if len(raw) != 10 {
			response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD", nil, nil)
			return
		}
	}

	key := searchCacheKey(query)
	var result []events.Event
	err := ctrl.cache.GetOrSet(c.Request.Context(), key, constants.TTL_SEARCH_RESULTS, func() (interface{}, error) {
		published, err := ctrl.eventService.List(c.Request.Context(), events.ListFilters{
			Status: events.StatusPublished,
		})
		if err != nil {
			return nil, err
		}
		return query.Apply(published), nil
	}, &result)
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to search events", nil, err.Error())
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Events fetched successfully", gin.H{
		"count":   len(result),
		"results": result,
	}, nil)
}

func searchCacheKey(q Query) string {
	return constants.CACHE_KEY_EVENT_SEARCH + fmt.Sprintf(
		"q:%s:cat:%s:max:%.2f:city:%s:date:%s:sort:%s",
		q.Search, q.Filters.Category, q.Filters.MaxPrice, q.Filters.City, q.Filters.Date, q.SortKey,
	)
}
