package rule

import (
	"github.com/amirhossein-jamali/ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/ledger/internal/domain/error"
	"github.com/shopspring/decimal"
)

// SufficientBalanceRule is broken when the sender's balance is lower than the amount
type SufficientBalanceRule struct {
	fromBalance decimal.Decimal
	amount      decimal.Decimal
}

// NewSufficientBalanceRule creates a SufficientBalanceRule
func NewSufficientBalanceRule(fromBalance, amount decimal.Decimal) *SufficientBalanceRule {
	return &SufficientBalanceRule{fromBalance: fromBalance, amount: amount}
}

func (r *SufficientBalanceRule) IsBroken() bool {
	return r.fromBalance.LessThan(r.amount)
}

func (r *SufficientBalanceRule) ErrorMessage() string {
	return errs.MsgInsufficientBalance
}

func (r *SufficientBalanceRule) Sentinel() error {
	return errs.ErrInsufficientBalance
}

// NoSelfTransferRule is broken when sender and receiver are the same user
type NoSelfTransferRule struct {
	fromUserID uint64
	toUserID   uint64
}

// NewNoSelfTransferRule creates a NoSelfTransferRule
func NewNoSelfTransferRule(fromUserID, toUserID uint64) *NoSelfTransferRule {
	return &NoSelfTransferRule{fromUserID: fromUserID, toUserID: toUserID}
}

func (r *NoSelfTransferRule) IsBroken() bool {
	return r.fromUserID == r.toUserID
}

func (r *NoSelfTransferRule) ErrorMessage() string {
	return errs.MsgSelfTransfer
}

func (r *NoSelfTransferRule) Sentinel() error {
	return errs.ErrSelfTransfer
}

// PositiveAmountRule is broken when the amount is zero or negative.
// The HTTP schema already rejects such amounts; this keeps the core safe for other callers.
type PositiveAmountRule struct {
	amount decimal.Decimal
}

// NewPositiveAmountRule creates a PositiveAmountRule
func NewPositiveAmountRule(amount decimal.Decimal) *PositiveAmountRule {
	return &PositiveAmountRule{amount: amount}
}

func (r *PositiveAmountRule) IsBroken() bool {
	return !r.amount.IsPositive()
}

func (r *PositiveAmountRule) ErrorMessage() string {
	return errs.MsgNonPositiveAmount
}

func (r *PositiveAmountRule) Sentinel() error {
	return errs.ErrInvalidAmount
}

// AmountPrecisionRule is broken when the amount has more fractional digits than
// a balance can hold
type AmountPrecisionRule struct {
	amount decimal.Decimal
}

// NewAmountPrecisionRule creates an AmountPrecisionRule
func NewAmountPrecisionRule(amount decimal.Decimal) *AmountPrecisionRule {
	return &AmountPrecisionRule{amount: amount}
}

func (r *AmountPrecisionRule) IsBroken() bool {
	return !entity.HasValidPrecision(r.amount)
}

func (r *AmountPrecisionRule) ErrorMessage() string {
	return errs.MsgAmountPrecision
}

func (r *AmountPrecisionRule) Sentinel() error {
	return errs.ErrInvalidAmount
}

// TransferRules returns the rules guarding a transfer in evaluation order:
// sufficient balance, no self transfer, positive amount, amount precision.
func TransferRules(fromUserID, toUserID uint64, fromBalance, amount decimal.Decimal) []BusinessRule {
	return []BusinessRule{
		NewSufficientBalanceRule(fromBalance, amount),
		NewNoSelfTransferRule(fromUserID, toUserID),
		NewPositiveAmountRule(amount),
		NewAmountPrecisionRule(amount),
	}
}
