package pricing

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

// ListRules handles GET /api/v1/pricing
func (c *Controller) ListRules(ctx *gin.Context) {
	rules, err := c.service.ListRules(ctx.Request.Context())
	if err != nil {
		response.RespondError(ctx, err)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Pricing rules retrieved successfully", gin.H{
		"rules": rules,
		"count": len(rules),
	}, nil)
}

// UpsertRule handles POST /api/v1/pricing
func (c *Controller) UpsertRule(ctx *gin.Context) {
	var req RuleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	rule, err := c.service.UpsertRule(ctx.Request.Context(), req)
	if err != nil {
		response.RespondError(ctx, err)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Pricing rule saved successfully", rule, nil)
}

// DeactivateRule handles DELETE /api/v1/pricing/:courtId
func (c *Controller) DeactivateRule(ctx *gin.Context) {
	if err := c.service.DeactivateRule(ctx.Request.Context(), ctx.Param("courtId")); err != nil {
		response.RespondError(ctx, err)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Pricing rule removed successfully", nil, nil)
}
