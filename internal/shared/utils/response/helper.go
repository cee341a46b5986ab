package response

import (
	"errors"
	"net/http"

	"courtside/internal/shared/apperrors"

	"github.com/gin-gonic/gin"
)

func RespondJSON(c *gin.Context, status string, code int, message string, data interface{}, errs interface{}) {
	c.JSON(code, StandardApiResponse{
		Status:     status,
		StatusCode: code,
		Message:    message,
		Data:       data,
		Errors:     errs,
	})
}

// RespondError maps the typed domain errors onto HTTP statuses. Anything
// unrecognized is an internal failure and stays opaque to the caller.
func RespondError(c *gin.Context, err error) {
	var (
		validationErr *apperrors.ValidationError
		conflictErr   *apperrors.ConflictError
		notFoundErr   *apperrors.NotFoundError
		transitionErr *apperrors.InvalidTransitionError
	)

	switch {
	case errors.As(err, &validationErr):
		RespondJSON(c, "error", http.StatusBadRequest, validationErr.Message, nil, gin.H{
			"field": validationErr.Field,
		})
	case errors.As(err, &conflictErr):
		RespondJSON(c, "error", http.StatusConflict, "Slots no longer available", nil, gin.H{
			"conflicts": conflictErr.Slots,
		})
	case errors.As(err, &notFoundErr):
		RespondJSON(c, "error", http.StatusNotFound, notFoundErr.Error(), nil, nil)
	case errors.As(err, &transitionErr):
		RespondJSON(c, "error", http.StatusUnprocessableEntity, transitionErr.Error(), nil, nil)
	default:
		RespondJSON(c, "error", http.StatusInternalServerError, "Internal server error", nil, nil)
	}
}
