package handler

import (
	"net/http"

	domainerr "github.com/amirhossein-jamali/ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/ledger/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/ledger/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/ledger/internal/infrastructure/adapter/api/validation"
	"github.com/gin-gonic/gin"
)

// respondError translates a use case error into a response.
// Business errors keep their message and status; anything else is a 500.
func respondError(c *gin.Context, logger coreport.Logger, err error) {
	if ble, ok := domainerr.AsBusinessLogicError(err); ok {
		c.JSON(ble.StatusCode(), dto.ErrorResponse{
			Detail: ble.Message,
			Code:   domainerr.ErrorCode(ble),
		})
		return
	}

	_ = c.Error(err)
	logger.Error("Request failed", map[string]any{
		"path":       c.Request.URL.Path,
		"request_id": middleware.GetRequestID(c),
		"error":      err.Error(),
	})

	c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Detail: "Internal server error",
		Code:   domainerr.CodeInternalServer,
	})
}

// respondBindError reports a malformed or invalid request body
func respondBindError(c *gin.Context, err error) {
	c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{
		Detail: validation.Describe(err),
		Code:   domainerr.CodeInvalidRequest,
	})
}
