package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"messagely/pkg/apperror"
)

// writeError serializes any error as {"error": {"message", "status"}}.
// Unclassified errors are reported as a generic internal failure so no
// driver detail leaks to clients.
func writeError(c *gin.Context, err error) {
	if appErr, ok := apperror.FromError(err); ok {
		c.JSON(appErr.StatusCode(), appErr.ToResponse())
		return
	}
	appErr := apperror.NewInternalError("internal server error", err)
	c.JSON(http.StatusInternalServerError, appErr.ToResponse())
}

// writeBindError reports a request-body binding failure as a validation error.
func writeBindError(c *gin.Context, err error) {
	writeError(c, apperror.NewValidationError(err.Error(), err))
}
