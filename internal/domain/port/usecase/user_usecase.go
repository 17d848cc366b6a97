package usecase

import (
	"context"

	"github.com/amirhossein-jamali/ledger/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// CreateUserRequest is one candidate in a batch creation
type CreateUserRequest struct {
	Name    string
	Email   string
	Balance decimal.Decimal
}

// SkippedUser reports a batch candidate that was not created
type SkippedUser struct {
	Email  string
	Reason string // client-facing message
	Code   int    // error code from the domain error package
}

// CreateUsersResult lists created and skipped candidates, each in input order
type CreateUsersResult struct {
	Created []entity.UserView
	Skipped []SkippedUser
}

// UserUseCase defines methods for user-related business operations
type UserUseCase interface {
	// CreateUsers creates every candidate whose email is not yet registered
	// The batch never fails as a whole for duplicate emails
	CreateUsers(ctx context.Context, requests []CreateUserRequest) (*CreateUsersResult, error)

	// ListUsers returns all users with balances in ascending ID order
	ListUsers(ctx context.Context) ([]entity.UserView, error)

	// GetUser returns a single user with its balance
	GetUser(ctx context.Context, userID uint64) (*entity.UserView, error)
}
