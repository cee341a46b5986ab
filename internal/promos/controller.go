package promos

import (
	"net/http"
	"time"

	"courtside/internal/schedule"
	"courtside/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
)

type Controller struct {
	service Service
	workday *schedule.Workday
	now     func() time.Time
}

func NewController(service Service, workday *schedule.Workday) *Controller {
	return &Controller{service: service, workday: workday, now: time.Now}
}

// PreviewRequest asks what a code would do to an order without applying it.
type PreviewRequest struct {
	Code   string `json:"code" binding:"required"`
	Amount int64  `json:"amount" binding:"required,gt=0"`
	Sport  string `json:"sport" binding:"required"`
}

// Preview handles POST /api/v1/promos/preview
func (c *Controller) Preview(ctx *gin.Context) {
	var req PreviewRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	// Evaluate against the venue's calendar day so the answer matches
	// what a booking created right now would get.
	today := c.workday.Day(c.now())
	result, err := c.service.Validate(ctx.Request.Context(), req.Code, req.Amount, req.Sport, today)
	if err != nil {
		response.RespondError(ctx, err)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Promo code evaluated", result, nil)
}

// ListCodes handles GET /api/v1/promos
func (c *Controller) ListCodes(ctx *gin.Context) {
	codes, err := c.service.ListCodes(ctx.Request.Context())
	if err != nil {
		response.RespondError(ctx, err)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Promo codes retrieved successfully", gin.H{
		"promo_codes": codes,
		"count":       len(codes),
	}, nil)
}

// CreateCode handles POST /api/v1/promos
func (c *Controller) CreateCode(ctx *gin.Context) {
	var req PromoRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	promo, err := c.service.CreateCode(ctx.Request.Context(), req)
	if err != nil {
		response.RespondError(ctx, err)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Promo code created successfully", promo, nil)
}

// UpdateCode handles PUT /api/v1/promos/:code
func (c *Controller) UpdateCode(ctx *gin.Context) {
	var req PromoRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	promo, err := c.service.UpdateCode(ctx.Request.Context(), ctx.Param("code"), req)
	if err != nil {
		response.RespondError(ctx, err)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Promo code updated successfully", promo, nil)
}

// DeactivateCode handles DELETE /api/v1/promos/:code
func (c *Controller) DeactivateCode(ctx *gin.Context) {
	if err := c.service.DeactivateCode(ctx.Request.Context(), ctx.Param("code")); err != nil {
		response.RespondError(ctx, err)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Promo code deactivated successfully", nil, nil)
}
