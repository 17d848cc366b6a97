package dto

import (
	"time"

	"github.com/amirhossein-jamali/ledger/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// TransferSuccessMessage is returned with every completed transfer
const TransferSuccessMessage = "Transfer successful"

// TransferRequest is the body of POST /transfer.
// IDs are signed so that a negative ID reaches the ledger and is reported as not found.
type TransferRequest struct {
	FromUserID *int64           `json:"from_user_id" binding:"required"`
	ToUserID   *int64           `json:"to_user_id" binding:"required"`
	Amount     *decimal.Decimal `json:"amount" binding:"required,gt=0,money"`
}

// ToEntity maps the request to a transfer
func (r TransferRequest) ToEntity() entity.Transfer {
	return entity.Transfer{
		FromUserID: userID(*r.FromUserID),
		ToUserID:   userID(*r.ToUserID),
		Amount:     *r.Amount,
	}
}

// userID maps negative IDs onto 0, which is never allocated
func userID(id int64) uint64 {
	if id < 0 {
		return 0
	}
	return uint64(id)
}

// TransferResponse is the body of a successful POST /transfer
type TransferResponse struct {
	Message     string    `json:"message"`
	FromUserID  uint64    `json:"from_user_id"`
	ToUserID    uint64    `json:"to_user_id"`
	Amount      string    `json:"amount"`
	FromBalance string    `json:"from_balance"`
	ToBalance   string    `json:"to_balance"`
	ExecutedAt  time.Time `json:"executed_at"`
}

// NewTransferResponse formats a receipt for the API
func NewTransferResponse(receipt *entity.TransferReceipt) TransferResponse {
	return TransferResponse{
		Message:     TransferSuccessMessage,
		FromUserID:  receipt.FromUserID,
		ToUserID:    receipt.ToUserID,
		Amount:      entity.FormatAmount(receipt.Amount),
		FromBalance: entity.FormatAmount(receipt.FromBalance),
		ToBalance:   entity.FormatAmount(receipt.ToBalance),
		ExecutedAt:  receipt.ExecutedAt,
	}
}
