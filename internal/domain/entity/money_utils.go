package entity

import (
	"fmt"
	"strings"

	errs "github.com/amirhossein-jamali/ledger/internal/domain/error"
	"github.com/shopspring/decimal"
)

// MaxDecimalPlaces defines the maximum number of decimal places allowed for money amounts
const MaxDecimalPlaces = 2

// ParseAmount parses a decimal string such as "10.50" into a money amount.
// The amount must be non-negative and carry at most MaxDecimalPlaces digits
// after the decimal point.
func ParseAmount(amount string) (decimal.Decimal, error) {
	amount = strings.TrimSpace(amount)
	if len(amount) == 0 {
		return decimal.Zero, fmt.Errorf("%w: empty value", errs.ErrInvalidAmount)
	}

	value, err := decimal.NewFromString(amount)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %s", errs.ErrInvalidAmount, err.Error())
	}

	if err := ValidateAmount(value); err != nil {
		return decimal.Zero, err
	}

	return value, nil
}

// ValidateAmount checks that a money amount is non-negative and has valid precision
func ValidateAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return errs.ErrNegativeAmount
	}
	if !HasValidPrecision(amount) {
		return fmt.Errorf("%w: maximum %d decimal places allowed", errs.ErrInvalidAmount, MaxDecimalPlaces)
	}
	return nil
}

// HasValidPrecision reports whether the amount has at most MaxDecimalPlaces fractional digits
func HasValidPrecision(amount decimal.Decimal) bool {
	return amount.Equal(amount.Truncate(MaxDecimalPlaces))
}

// FormatAmount renders an amount with exactly MaxDecimalPlaces decimal places
// For example:
// - 10.1 becomes "10.10"
// - 10 becomes "10.00"
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(MaxDecimalPlaces)
}

// SumAmounts adds up a list of amounts
func SumAmounts(amounts ...decimal.Decimal) decimal.Decimal {
	return decimal.Sum(decimal.Zero, amounts...)
}
