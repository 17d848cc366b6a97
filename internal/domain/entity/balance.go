package entity

import (
	"time"

	errs "github.com/amirhossein-jamali/ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/ledger/internal/domain/port/core"
	"github.com/shopspring/decimal"
)

// Balance is the monetary record owned by exactly one user
type Balance struct {
	ID        uint64
	amount    decimal.Decimal // kept private so every change goes through Apply
	UpdatedAt time.Time
}

// NewBalance creates a balance record with a non-negative initial amount
func NewBalance(id uint64, initial decimal.Decimal, timeProvider coreport.TimeProvider) (*Balance, error) {
	if id == 0 {
		return nil, errs.ErrInvalidUserID
	}
	if err := ValidateAmount(initial); err != nil {
		return nil, err
	}

	return &Balance{
		ID:        id,
		amount:    initial,
		UpdatedAt: timeProvider.Now(),
	}, nil
}

// RestoreBalance rebuilds a balance record from stored values without validation
func RestoreBalance(id uint64, amount decimal.Decimal, updatedAt time.Time) *Balance {
	return &Balance{ID: id, amount: amount, UpdatedAt: updatedAt}
}

// Amount returns the current balance
func (b *Balance) Amount() decimal.Decimal {
	return b.amount
}

// Apply adds a signed delta to the balance.
// Returns a BalanceError wrapping ErrNegativeBalance if the result would drop below zero.
func (b *Balance) Apply(delta decimal.Decimal, timeProvider coreport.TimeProvider) error {
	next := b.amount.Add(delta)
	if next.IsNegative() {
		return &errs.BalanceError{
			BalanceID:      b.ID,
			Delta:          FormatAmount(delta),
			CurrentBalance: FormatAmount(b.amount),
			Err:            errs.ErrNegativeBalance,
		}
	}

	b.amount = next
	b.UpdatedAt = timeProvider.Now()
	return nil
}
