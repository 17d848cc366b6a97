package handler

import (
	"net/http"

	coreport "github.com/amirhossein-jamali/ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/ledger/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// TransferHandler handles transfer requests
type TransferHandler struct {
	transferUseCase usecase.TransferUseCase
	logger          coreport.Logger
}

// NewTransferHandler creates a new transfer handler instance
func NewTransferHandler(
	transferUseCase usecase.TransferUseCase,
	logger coreport.Logger,
) *TransferHandler {
	return &TransferHandler{
		transferUseCase: transferUseCase,
		logger:          logger,
	}
}

// Transfer handles the POST /transfer endpoint
func (h *TransferHandler) Transfer(c *gin.Context) {
	var req dto.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	receipt, err := h.transferUseCase.ExecuteTransfer(c.Request.Context(), req.ToEntity())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewTransferResponse(receipt))
}
