package events

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"gatherly/internal/shared/utils/response"
	"gatherly/internal/users"
)

type Controller interface {
	List(c *gin.Context)
	Get(c *gin.Context)
	Create(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

type controller struct {
	service     Service
	userService users.Service
}

func NewController(service Service, userService users.Service) Controller {
	return &controller{service: service, userService: userService}
}

func (ctrl *controller) List(c *gin.Context) {
	filters := ListFilters{
		Status:   StatusPublished,
		Category: c.Query("category"),
	}
	if status := c.Query("status"); status != "" {
		if !IsValidStatus(status) {
			response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid status filter", nil, nil)
			return
		}
		filters.Status = EventStatus(status)
	}
	if eventID := c.Query("id"); eventID != "" {
		id, err := uuid.Parse(eventID)
		if err != nil {
			response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid id filter", nil, nil)
			return
		}
		event, err := ctrl.service.GetByID(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, ErrEventNotFound) {
				response.RespondJSON(c, "success", http.StatusOK, "Events fetched successfully", []Event{}, nil)
				return
			}
			response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to list events", nil, err.Error())
			return
		}
		response.RespondJSON(c, "success", http.StatusOK, "Events fetched successfully", []Event{*event}, nil)
		return
	}
	if createdBy := c.Query("created_by"); createdBy != "" {
		// "me" resolves to the authenticated caller
		if createdBy == "me" {
			createdBy = c.GetString("user_id")
			if createdBy == "" {
				response.RespondJSON(c, "error", http.StatusUnauthorized, "Authentication required", nil, nil)
				return
			}
		}
		id, err := uuid.Parse(createdBy)
		if err != nil {
			response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid created_by filter", nil, nil)
			return
		}
		filters.CreatedBy = id
	}
	if limit := c.Query("limit"); limit != "" {
		n, err := strconv.Atoi(limit)
		if err != nil || n < 0 {
			response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid limit", nil, nil)
			return
		}
		filters.Limit = n
	}

	list, err := ctrl.service.List(c.Request.Context(), filters)
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to list events", nil, err.Error())
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Events fetched successfully", list, nil)
}

func (ctrl *controller) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("eventId"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid event ID", nil, nil)
		return
	}

	event, err := ctrl.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrEventNotFound) {
			response.RespondJSON(c, "error", http.StatusNotFound, "Event not found", nil, nil)
			return
		}
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to fetch event", nil, err.Error())
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Event fetched successfully", event, nil)
}

func (ctrl *controller) Create(c *gin.Context) {
	actorID, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusUnauthorized, "Authentication required", nil, nil)
		return
	}

	var req CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	organizer, err := ctrl.userService.GetProfile(c.Request.Context(), actorID)
	if err != nil {
		response.RespondJSON(c, "error", http.StatusUnauthorized, "Authentication required", nil, nil)
		return
	}

	event, err := ctrl.service.Create(c.Request.Context(), organizer, &req)
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Failed to create event", nil, err.Error())
		return
	}

	response.RespondJSON(c, "success", http.StatusCreated, "Event created successfully", event, nil)
}

func (ctrl *controller) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("eventId"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid event ID", nil, nil)
		return
	}
	actorID, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusUnauthorized, "Authentication required", nil, nil)
		return
	}

	var req UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	event, err := ctrl.service.Update(c.Request.Context(), actorID, c.GetString("user_role"), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrEventNotFound):
			response.RespondJSON(c, "error", http.StatusNotFound, "Event not found", nil, nil)
		case errors.Is(err, ErrNotOwner):
			response.RespondJSON(c, "error", http.StatusForbidden, "Only the organizer can modify this event", nil, nil)
		case errors.Is(err, ErrInvalidStatus):
			response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid event status", nil, nil)
		default:
			response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to update event", nil, err.Error())
		}
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Event updated successfully", event, nil)
}

func (ctrl *controller) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("eventId"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid event ID", nil, nil)
		return
	}
	actorID, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusUnauthorized, "Authentication required", nil, nil)
		return
	}

	err = ctrl.service.Delete(c.Request.Context(), actorID, c.GetString("user_role"), id)
	if err != nil {
		switch {
		case errors.Is(err, ErrEventNotFound):
			response.RespondJSON(c, "error", http.StatusNotFound, "Event not found", nil, nil)
		case errors.Is(err, ErrNotOwner):
			response.RespondJSON(c, "error", http.StatusForbidden, "Only the organizer can delete this event", nil, nil)
		case errors.Is(err, ErrEventHasBookings):
			response.RespondJSON(c, "error", http.StatusConflict, "Event has confirmed bookings and cannot be deleted", nil, nil)
		default:
			response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to delete event", nil, err.Error())
		}
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Event deleted successfully", nil, nil)
}
