package handler

import (
	"context"
	"errors"
	"net/http"

	domainerr "pocket-wallet/internal/domain/error"
	coreport "pocket-wallet/internal/domain/port/core"
	"pocket-wallet/internal/infrastructure/adapter/api/dto"

	"github.com/gin-gonic/gin"
)

// writeBindError reports a malformed request body
func writeBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Code:    domainerr.CodeValidation,
		Message: "invalid request body: " + err.Error(),
	})
}

// writeDomainError maps a domain error to an HTTP response. Validation
// failures keep their field message; everything unexpected collapses to a
// logged 500.
func writeDomainError(c *gin.Context, logger coreport.Logger, op string, err error) {
	switch {
	case errors.Is(err, domainerr.ErrInvalidCardType):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.CodeInvalidCardType,
			Message: err.Error(),
		})
	case domainerr.IsValidationError(err):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: err.Error(),
		})
	case errors.Is(err, domainerr.ErrCardNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{
			Code:    domainerr.CodeCardNotFound,
			Message: domainerr.ErrCardNotFound.Error(),
		})
	case errors.Is(err, domainerr.ErrNotAuthenticated):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Code:    domainerr.CodeNotAuthenticated,
			Message: domainerr.ErrNotAuthenticated.Error(),
		})
	case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
		// Client went away mid simulated call; nothing was applied.
		c.Status(httpStatusClientClosedRequest)
	default:
		logger.Error("Unhandled error in API request", map[string]any{
			"operation": op,
			"error":     err.Error(),
		})
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Code:    domainerr.CodeInternalServer,
			Message: "internal server error",
		})
	}
}

// httpStatusClientClosedRequest is the nginx convention for a request whose
// client disconnected before a response was written.
const httpStatusClientClosedRequest = 499
