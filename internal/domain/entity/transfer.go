package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transfer is a request to move Amount from one user's balance to another's
type Transfer struct {
	FromUserID uint64
	ToUserID   uint64
	Amount     decimal.Decimal
}

// TransferReceipt describes a completed transfer
type TransferReceipt struct {
	FromUserID  uint64
	ToUserID    uint64
	Amount      decimal.Decimal
	FromBalance decimal.Decimal // sender balance after the transfer
	ToBalance   decimal.Decimal // receiver balance after the transfer
	ExecutedAt  time.Time
}
