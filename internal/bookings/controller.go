package bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"gatherly/internal/events"
	"gatherly/internal/seats"
	"gatherly/internal/shared/utils/response"
)

type Controller interface {
	Create(c *gin.Context)
	MyBookings(c *gin.Context)
	Get(c *gin.Context)
	List(c *gin.Context)
	Cancel(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

func (ctrl *controller) Create(c *gin.Context) {
	userID, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusUnauthorized, "Authentication required", nil, nil)
		return
	}

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	booking, err := ctrl.service.Create(c.Request.Context(), userID, &req)
	if err != nil {
		var taken *SeatTakenError
		switch {
		case errors.As(err, &taken):
			response.RespondJSON(c, "error", http.StatusConflict, taken.Error(), gin.H{"seat": taken.Seat}, nil)
		case errors.Is(err, events.ErrEventNotFound):
			response.RespondJSON(c, "error", http.StatusNotFound, "Event not found", nil, nil)
		case errors.Is(err, ErrEventNotBookable):
			response.RespondJSON(c, "error", http.StatusConflict, "Event is not open for booking", nil, nil)
		case errors.Is(err, ErrOwnEvent):
			response.RespondJSON(c, "error", http.StatusForbidden, "You cannot book your own event", nil, nil)
		case errors.Is(err, ErrDuplicateSeat):
			response.RespondJSON(c, "error", http.StatusBadRequest, "Duplicate seat in request", nil, nil)
		case errors.Is(err, seats.ErrSeatOutOfBounds):
			response.RespondJSON(c, "error", http.StatusBadRequest, "Seat outside hall layout", nil, nil)
		default:
			response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to create booking", nil, err.Error())
		}
		return
	}

	response.RespondJSON(c, "success", http.StatusCreated, "Booking confirmed", booking, nil)
}

func (ctrl *controller) MyBookings(c *gin.Context) {
	userID, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusUnauthorized, "Authentication required", nil, nil)
		return
	}

	list, err := ctrl.service.GetUserBookings(c.Request.Context(), userID)
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to list bookings", nil, err.Error())
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Bookings fetched successfully", list, nil)
}

func (ctrl *controller) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("bookingId"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid booking ID", nil, nil)
		return
	}
	actorID, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusUnauthorized, "Authentication required", nil, nil)
		return
	}

	booking, err := ctrl.service.GetByID(c.Request.Context(), actorID, c.GetString("user_role"), id)
	if err != nil {
		switch {
		case errors.Is(err, ErrBookingNotFound):
			response.RespondJSON(c, "error", http.StatusNotFound, "Booking not found", nil, nil)
		case errors.Is(err, ErrNotBookingOwner):
			response.RespondJSON(c, "error", http.StatusForbidden, "Booking belongs to another user", nil, nil)
		default:
			response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to fetch booking", nil, err.Error())
		}
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Booking fetched successfully", booking, nil)
}

// List is the admin view over all bookings.
func (ctrl *controller) List(c *gin.Context) {
	var filters ListFilters
	if raw := c.Query("event_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid event_id filter", nil, nil)
			return
		}
		filters.EventID = id
	}
	if raw := c.Query("user_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid user_id filter", nil, nil)
			return
		}
		filters.UserID = id
	}
	if raw := c.Query("status"); raw != "" {
		if !IsValidBookingStatus(raw) {
			response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid status filter", nil, nil)
			return
		}
		filters.Status = BookingStatus(raw)
	}
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid limit", nil, nil)
			return
		}
		filters.Limit = n
	}

	list, err := ctrl.service.List(c.Request.Context(), filters)
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to list bookings", nil, err.Error())
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Bookings fetched successfully", list, nil)
}

func (ctrl *controller) Cancel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("bookingId"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid booking ID", nil, nil)
		return
	}
	actorID, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusUnauthorized, "Authentication required", nil, nil)
		return
	}

	booking, err := ctrl.service.Cancel(c.Request.Context(), actorID, c.GetString("user_role"), id)
	if err != nil {
		switch {
		case errors.Is(err, ErrBookingNotFound):
			response.RespondJSON(c, "error", http.StatusNotFound, "Booking not found", nil, nil)
		case errors.Is(err, ErrNotBookingOwner):
			response.RespondJSON(c, "error", http.StatusForbidden, "Booking belongs to another user", nil, nil)
		case errors.Is(err, ErrAlreadyCancelled):
			response.RespondJSON(c, "error", http.StatusConflict, "Booking is already cancelled", nil, nil)
		default:
			response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to cancel booking", nil, err.Error())
		}
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Booking cancelled", booking, nil)
}
