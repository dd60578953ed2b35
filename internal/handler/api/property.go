package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	reqdto "unistay/internal/handler/dto/request"
	resdto "unistay/internal/handler/dto/response"
	"unistay/internal/handler/middleware"
	"unistay/internal/usecase/commands"
	"unistay/internal/usecase/queries"
)

type PropertyHandler struct {
	propertyCommands    commands.PropertyCommands
	propertyQueries     queries.PropertyQueries
	availabilityQueries queries.AvailabilityQueries
}

func NewPropertyHandler(
	propertyCommands commands.PropertyCommands,
	propertyQueries queries.PropertyQueries,
	availabilityQueries queries.AvailabilityQueries,
) *PropertyHandler {
	return &PropertyHandler{
		propertyCommands:    propertyCommands,
		propertyQueries:     propertyQueries,
		availabilityQueries: availabilityQueries,
	}
}

// @Summary Create property
// @Description Publish a new listing owned by the current host
// @Tags properties
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreatePropertyRequest true "Property data"
// @Success 201 {object} resdto.PropertyCreatedResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /properties [post]
func (h *PropertyHandler) CreateProperty(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.propertyCommands.CreateProperty(c.Request.Context(), req.ToCommand(), userID)
	if err != nil {
		if errors.Is(err, commands.ErrDomainValidation) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid property data",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusCreated, resdto.PropertyCreatedResponse{PropertyID: result.PropertyID})
}

// @Summary Update property
// @Description Partially update a listing; only the owner may update it
// @Tags properties
// @Accept json
// @Security BearerAuth
// @Param id path string true "Property ID"
// @Param request body reqdto.UpdatePropertyRequest true "Fields to change"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /properties/{id} [patch]
func (h *PropertyHandler) UpdateProperty(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	propertyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid property ID format",
		})
		return
	}

	var req reqdto.UpdatePropertyRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.propertyCommands.UpdateProperty(c.Request.Context(), propertyID, req.ToCommand(), userID); err != nil {
		h.writePropertyError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Deactivate property
// @Description Take a listing off the market; existing bookings are unaffected
// @Tags properties
// @Security BearerAuth
// @Param id path string true "Property ID"
// @Success 204 "No Content"
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /properties/{id} [delete]
func (h *PropertyHandler) DeactivateProperty(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	propertyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid property ID format",
		})
		return
	}

	if err := h.propertyCommands.DeactivateProperty(c.Request.Context(), propertyID, userID); err != nil {
		h.writePropertyError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Get property
// @Description Get listing details including rating stats
// @Tags properties
// @Produce json
// @Param id path string true "Property ID"
// @Success 200 {object} queries.PropertyView
// @Failure 404 {object} map[string]string
// @Router /properties/{id} [get]
func (h *PropertyHandler) GetProperty(c *gin.Context) {
	propertyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid property ID format",
		})
		return
	}

	view, err := h.propertyQueries.GetProperty(c.Request.Context(), propertyID)
	if err != nil {
		if errors.Is(err, queries.ErrPropertyNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Property not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, view)
}

// @Summary Search properties
// @Description Cursor-paginated search over active listings
// @Tags properties
// @Produce json
// @Param city query string false "Exact city match"
// @Param min_price query int false "Minimum monthly price in cents"
// @Param max_price query int false "Maximum monthly price in cents"
// @Param min_guests query int false "Minimum guest capacity"
// @Param limit query int false "Page size (max 200)"
// @Param after query string false "Cursor from a previous page"
// @Success 200 {object} queries.PropertyList
// @Failure 400 {object} map[string]string
// @Router /properties [get]
func (h *PropertyHandler) SearchProperties(c *gin.Context) {
	filter, err := h.parseFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	limit, _ := strconv.Atoi(c.Query("limit"))
	after := c.Query("after")

	result, err := h.propertyQueries.SearchProperties(c.Request.Context(), filter, limit, after)
	if err != nil {
		if errors.Is(err, queries.ErrInvalidCursor) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid cursor",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, result)
}

// @Summary List my properties
// @Description All listings owned by the current host
// @Tags properties
// @Produce json
// @Security BearerAuth
// @Success 200 {array} queries.PropertyListItem
// @Failure 401 {object} map[string]string
// @Router /host/properties [get]
func (h *PropertyHandler) ListMyProperties(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	items, err := h.propertyQueries.ListHostProperties(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, items)
}

// @Summary Get availability
// @Description Dates in [from, until) that cannot be booked
// @Tags properties
// @Produce json
// @Param id path string true "Property ID"
// @Param from query string false "Window start (YYYY-MM-DD), defaults to today"
// @Param until query string false "Window end, exclusive (YYYY-MM-DD), defaults to a year out"
// @Success 200 {object} queries.AvailabilityView
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /properties/{id}/availability [get]
func (h *PropertyHandler) GetAvailability(c *gin.Context) {
	propertyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid property ID format",
		})
		return
	}

	// Both window bounds are optional. Absent bounds default to today
	// through the widest window the query layer accepts.
	today := time.Now().UTC().Truncate(24 * time.Hour)
	from := today
	if raw := c.Query("from"); raw != "" {
		from, err = reqdto.ParseDate(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": err.Error(),
			})
			return
		}
	}
	until := from.AddDate(0, 0, 366)
	if raw := c.Query("until"); raw != "" {
		until, err = reqdto.ParseDate(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": err.Error(),
			})
			return
		}
	}

	view, err := h.availabilityQueries.GetAvailability(c.Request.Context(), propertyID, from, until)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrPropertyNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Property not found",
			})
		case errors.Is(err, queries.ErrInvalidAvailabilityWindow),
			errors.Is(err, queries.ErrAvailabilityWindowTooWide):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid availability window",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, view)
}

// @Summary Block dates
// @Description Host marks dates as unavailable without a booking
// @Tags properties
// @Accept json
// @Security BearerAuth
// @Param id path string true "Property ID"
// @Param request body reqdto.CalendarDatesRequest true "Dates to block"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /properties/{id}/block [post]
func (h *PropertyHandler) BlockDates(c *gin.Context) {
	h.calendarAction(c, h.propertyCommands.BlockDates)
}

// @Summary Unblock dates
// @Description Host reopens previously blocked dates
// @Tags properties
// @Accept json
// @Security BearerAuth
// @Param id path string true "Property ID"
// @Param request body reqdto.CalendarDatesRequest true "Dates to unblock"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /properties/{id}/unblock [post]
func (h *PropertyHandler) UnblockDates(c *gin.Context) {
	h.calendarAction(c, h.propertyCommands.UnblockDates)
}

func (h *PropertyHandler) calendarAction(
	c *gin.Context,
	action func(ctx context.Context, propertyID, callerID uuid.UUID, dates []time.Time) error,
) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	propertyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid property ID format",
		})
		return
	}

	var req reqdto.CalendarDatesRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	dates, err := reqdto.ParseDates(req.Dates)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	if err := action(c.Request.Context(), propertyID, userID, dates); err != nil {
		if errors.Is(err, commands.ErrDatesBlocked) {
			c.JSON(http.StatusConflict, gin.H{
				"error": "Some dates are already booked or blocked",
			})
			return
		}
		h.writePropertyError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *PropertyHandler) parseFilter(c *gin.Context) (queries.PropertyFilter, error) {
	var filter queries.PropertyFilter

	if city := c.Query("city"); city != "" {
		filter.City = &city
	}
	if s := c.Query("min_price"); s != "" {
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil || v < 0 {
			return filter, errors.New("invalid min_price")
		}
		filter.MinMonthlyPriceCents = &v
	}
	if s := c.Query("max_price"); s != "" {
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil || v < 0 {
			return filter, errors.New("invalid max_price")
		}
		filter.MaxMonthlyPriceCents = &v
	}
	if s := c.Query("min_guests"); s != "" {
		v, err := strconv.ParseInt(s, 10, 32)
		if err != nil || v < 1 {
			return filter, errors.New("invalid min_guests")
		}
		n := int32(v)
		filter.MinGuests = &n
	}

	return filter, nil
}

func (h *PropertyHandler) writePropertyError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrPropertyNotFoundWrite), errors.Is(err, queries.ErrPropertyNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Property not found",
		})
	case errors.Is(err, commands.ErrPropertyForbidden):
		c.JSON(http.StatusForbidden, gin.H{
			"error": "You do not own this property",
		})
	case errors.Is(err, commands.ErrDomainValidation):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid property data",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
