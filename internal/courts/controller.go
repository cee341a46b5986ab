package courts

import (
	"context"
	"net/http"

	"courtside/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
)

// AvailabilityService is the slice of the availability resolver this
// controller needs (defined here to avoid a package cycle).
type AvailabilityService interface {
	UnavailableSlots(ctx context.Context, courtID, workday string) ([]string, error)
}

type Controller struct {
	service      Service
	availability AvailabilityService
}

func NewController(service Service, availability AvailabilityService) *Controller {
	return &Controller{service: service, availability: availability}
}

// ListCourts handles GET /api/v1/courts
func (c *Controller) ListCourts(ctx *gin.Context) {
	list, err := c.service.ListCourts(ctx.Request.Context())
	if err != nil {
		response.RespondError(ctx, err)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Courts retrieved successfully", gin.H{
		"courts": list,
		"count":  len(list),
	}, nil)
}

// GetCourt handles GET /api/v1/courts/:id
func (c *Controller) GetCourt(ctx *gin.Context) {
	court, err := c.service.GetCourt(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		response.RespondError(ctx, err)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Court retrieved successfully", court, nil)
}

type bookedSlotsRequest struct {
	Date string `json:"date" binding:"required"`
}

// GetBookedSlots handles POST /api/v1/courts/:id/booked-slots.
// The returned labels are advisory; the commit-time re-check is the
// authoritative one.
func (c *Controller) GetBookedSlots(ctx *gin.Context) {
	var req bookedSlotsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	slots, err := c.availability.UnavailableSlots(ctx.Request.Context(), ctx.Param("id"), req.Date)
	if err != nil {
		response.RespondError(ctx, err)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Booked slots retrieved successfully", gin.H{
		"booked_slots": slots,
	}, nil)
}
