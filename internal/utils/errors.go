package utils

import (
	"errors"
	"net/http"

	"github.com/tunlify/tunlify/internal/api/dto/common"
	"github.com/tunlify/tunlify/internal/logging"
	"github.com/tunlify/tunlify/internal/repository"
	"github.com/tunlify/tunlify/internal/service"

	"github.com/gin-gonic/gin"
)

// HandleAPIError translates a service or repository error to an HTTP status
// and response envelope exactly once, at the API boundary.
func HandleAPIError(c *gin.Context, err error, defaultCode common.ErrorCode, defaultMessage string) {
	status, code, message := classify(err, defaultCode, defaultMessage)

	logger := logging.GetGlobalLogger()
	logger.LogHTTPError(
		c.Request.Method,
		c.Request.URL.Path,
		c.ClientIP(),
		status,
		message,
		err,
	)

	// In production, don't expose error details
	var errorDetails interface{}
	if gin.Mode() != gin.ReleaseMode {
		errorDetails = err.Error()
	}

	c.JSON(status, common.NewErrorResponse(code, message, errorDetails))
}

func classify(err error, defaultCode common.ErrorCode, defaultMessage string) (int, common.ErrorCode, string) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound, common.ErrCodeNotFound, "Resource not found"
	case errors.Is(err, repository.ErrSubdomainTaken):
		return http.StatusConflict, common.ErrCodeConflict, "Subdomain is already taken in this region"
	case errors.Is(err, repository.ErrPortTaken):
		return http.StatusConflict, common.ErrCodeConflict, "Remote port is already taken in this region"
	case errors.Is(err, service.ErrExhaustedPortSpace):
		return http.StatusInternalServerError, common.ErrCodeInternalServer, "No free port available"
	case errors.Is(err, service.ErrInvalidToken):
		return http.StatusUnauthorized, common.ErrCodeUnauthorized, "Invalid connection token"
	case errors.Is(err, service.ErrUnknownServiceType):
		return http.StatusBadRequest, common.ErrCodeValidation, "Unknown service type"
	default:
		return http.StatusInternalServerError, defaultCode, defaultMessage
	}
}
