package blocks

import (
	"net/http"

	"courtside/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

// BlockSlot handles POST /api/v1/blocks
func (c *Controller) BlockSlot(ctx *gin.Context) {
	var req BlockRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	blockedBy := "admin"
	if id, exists := ctx.Get("admin_id"); exists {
		if idStr, ok := id.(string); ok && idStr != "" {
			blockedBy = idStr
		}
	}

	block, err := c.service.BlockSlot(ctx.Request.Context(), req, blockedBy)
	if err != nil {
		response.RespondError(ctx, err)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Slot blocked successfully", block, nil)
}

// UnblockSlot handles DELETE /api/v1/blocks
func (c *Controller) UnblockSlot(ctx *gin.Context) {
	var req UnblockRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	if err := c.service.UnblockSlot(ctx.Request.Context(), req); err != nil {
		response.RespondError(ctx, err)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Slot unblocked successfully", nil, nil)
}

// ListBlocked handles GET /api/v1/blocks?court_id=&date=
func (c *Controller) ListBlocked(ctx *gin.Context) {
	list, err := c.service.ListBlocked(ctx.Request.Context(), ctx.Query("court_id"), ctx.Query("date"))
	if err != nil {
		response.RespondError(ctx, err)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Blocked slots retrieved successfully", gin.H{
		"blocked_slots": list,
		"count":         len(list),
	}, nil)
}
