package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Balance is the stored row for a balance record
type Balance struct {
	ID        uint64
	Amount    decimal.Decimal
	UpdatedAt time.Time
}
