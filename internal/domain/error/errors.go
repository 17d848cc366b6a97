package error

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInsufficientBalance = 4001
	CodeInvalidAmount       = 4002
	CodeInvalidUserID       = 4003
	CodeSelfTransfer        = 4004
	CodeDuplicateEmail      = 4005
	CodeInvalidRequest      = 4006
	CodeUserNotFound        = 4040

	// 5xxx - Server errors
	CodeInternalServer = 5000
)

// Messages surfaced to API clients. They are part of the public contract.
const (
	MsgUsersNotFound       = "One or both users not found."
	MsgUserNotFound        = "User not found."
	MsgInsufficientBalance = "Insufficient balance on the sender's account."
	MsgSelfTransfer        = "Sender and receiver cannot be the same user."
	MsgNonPositiveAmount   = "Transfer amount must be greater than zero."
	MsgAmountPrecision     = "Transfer amount must have at most 2 decimal places."
	MsgEmailRegistered     = "Email already registered."
	MsgInvalidBalance      = "Balance must be a non-negative amount with at most 2 decimal places."
)

// Base error types
var (
	// ErrInsufficientBalance is returned when the sender cannot cover the transfer amount
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrSelfTransfer is returned when sender and receiver are the same user
	ErrSelfTransfer = errors.New("self transfer")

	// ErrInvalidAmount is returned when an amount is malformed or not positive where required
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrNegativeAmount is returned when an amount is negative
	ErrNegativeAmount = errors.New("amount cannot be negative")

	// ErrNegativeBalance is returned when a mutation would leave a balance below zero
	ErrNegativeBalance = errors.New("balance cannot be negative")

	// ErrInvalidUserID is returned when the user ID is not a positive integer
	ErrInvalidUserID = errors.New("user ID must be positive")

	// ErrUserNotFound is returned when the requested user doesn't exist
	ErrUserNotFound = errors.New("user not found")

	// ErrBalanceNotFound is returned when a balance record is missing
	ErrBalanceNotFound = errors.New("balance record not found")

	// ErrDuplicateEmail is returned when an email is already registered
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// Kind classifies a business error for the transport layer
type Kind int

const (
	// KindInvalid marks a violated business rule (400-equivalent)
	KindInvalid Kind = iota
	// KindNotFound marks a reference to a record that does not exist (404-equivalent)
	KindNotFound
)

// String returns the kind name used in logs
func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	default:
		return "invalid"
	}
}

// StatusCode maps the kind onto an HTTP status code
func (k Kind) StatusCode() int {
	if k == KindNotFound {
		return http.StatusNotFound
	}
	return http.StatusBadRequest
}

// BusinessLogicError is the single error shape produced by ledger operations.
// Message is client-facing; Err is the sentinel used for errors.Is matching.
type BusinessLogicError struct {
	Message string
	Kind    Kind
	Err     error
}

// Error implements the error interface
func (e *BusinessLogicError) Error() string {
	return e.Message
}

// Unwrap returns the underlying sentinel error
func (e *BusinessLogicError) Unwrap() error {
	return e.Err
}

// StatusCode returns the HTTP status code for this error
func (e *BusinessLogicError) StatusCode() int {
	return e.Kind.StatusCode()
}

// LogFields returns a map of fields for structured logging
func (e *BusinessLogicError) LogFields() map[string]any {
	fields := map[string]any{
		"error_type": "business_logic_error",
		"kind":       e.Kind.String(),
		"message":    e.Message,
		"error_code": ErrorCode(e),
	}
	if e.Err != nil {
		fields["error"] = e.Err.Error()
	}
	return fields
}

// NewInvalidError creates a business error for a violated rule
func NewInvalidError(message string, err error) error {
	return &BusinessLogicError{Message: message, Kind: KindInvalid, Err: err}
}

// NewNotFoundError creates a business error for a missing record
func NewNotFoundError(message string, err error) error {
	return &BusinessLogicError{Message: message, Kind: KindNotFound, Err: err}
}

// AsBusinessLogicError extracts a BusinessLogicError from an error chain
func AsBusinessLogicError(err error) (*BusinessLogicError, bool) {
	var ble *BusinessLogicError
	if errors.As(err, &ble) {
		return ble, true
	}
	return nil, false
}

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInsufficientBalance):
		return CodeInsufficientBalance
	case errors.Is(err, ErrInvalidAmount), errors.Is(err, ErrNegativeAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrInvalidUserID):
		return CodeInvalidUserID
	case errors.Is(err, ErrSelfTransfer):
		return CodeSelfTransfer
	case errors.Is(err, ErrDuplicateEmail):
		return CodeDuplicateEmail
	case errors.Is(err, ErrInvalidRequest):
		return CodeInvalidRequest
	case errors.Is(err, ErrUserNotFound):
		return CodeUserNotFound
	default:
		return CodeInternalServer
	}
}

// BalanceError represents an inconsistency detected while mutating a balance record
type BalanceError struct {
	BalanceID      uint64
	Delta          string
	CurrentBalance string
	Err            error
}

// Error implements the error interface for BalanceError
func (e *BalanceError) Error() string {
	return fmt.Sprintf("balance operation failed for record %d (current balance: %s, delta: %s): %v",
		e.BalanceID, e.CurrentBalance, e.Delta, e.Err)
}

// Unwrap returns the underlying error
func (e *BalanceError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *BalanceError) LogFields() map[string]any {
	return map[string]any{
		"error_type":      "balance_error",
		"balance_id":      e.BalanceID,
		"delta":           e.Delta,
		"current_balance": e.CurrentBalance,
		"error":           e.Err.Error(),
		"error_code":      ErrorCode(e.Err),
	}
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	if ble, ok := AsBusinessLogicError(err); ok {
		return ble.Kind == KindNotFound
	}
	return errors.Is(err, ErrUserNotFound)
}

// IsInvalidError checks if the error is a business rule violation
func IsInvalidError(err error) bool {
	ble, ok := AsBusinessLogicError(err)
	return ok && ble.Kind == KindInvalid
}

// IsInsufficientBalanceError checks if the error is related to insufficient balance
func IsInsufficientBalanceError(err error) bool {
	return errors.Is(err, ErrInsufficientBalance)
}
