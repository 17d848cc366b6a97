package dto

import (
	"github.com/amirhossein-jamali/ledger/internal/domain/entity"
	"github.com/amirhossein-jamali/ledger/internal/domain/port/usecase"
	"github.com/shopspring/decimal"
)

// CreateUserRequest is one element of the POST /users body.
// Balance accepts a JSON number or a decimal string.
type CreateUserRequest struct {
	Name    string           `json:"name" binding:"required"`
	Email   string           `json:"email" binding:"required"`
	Balance *decimal.Decimal `json:"balance" binding:"required,gte=0,money"`
}

// ToUseCase maps the request to the use case input
func (r CreateUserRequest) ToUseCase() usecase.CreateUserRequest {
	return usecase.CreateUserRequest{
		Name:    r.Name,
		Email:   r.Email,
		Balance: *r.Balance,
	}
}

// UserResponse is the public view of a user
type UserResponse struct {
	ID      uint64 `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Balance string `json:"balance"`
}

// NewUserResponse formats a user view for the API
func NewUserResponse(view entity.UserView) UserResponse {
	return UserResponse{
		ID:      view.ID,
		Name:    view.Name,
		Email:   view.Email,
		Balance: entity.FormatAmount(view.Balance),
	}
}

// NewUserListResponse formats user views, always returning a non-nil slice
func NewUserListResponse(views []entity.UserView) []UserResponse {
	users := make([]UserResponse, 0, len(views))
	for _, view := range views {
		users = append(users, NewUserResponse(view))
	}
	return users
}

// SkippedUserResponse reports a batch candidate that was not created
type SkippedUserResponse struct {
	Email  string `json:"email"`
	Reason string `json:"reason"`
	Code   int    `json:"code,omitempty"`
}

// CreateUsersResponse is the body of POST /users
type CreateUsersResponse struct {
	CreatedUsers []UserResponse        `json:"created_users"`
	SkippedUsers []SkippedUserResponse `json:"skipped_users"`
}

// NewCreateUsersResponse formats a batch result for the API
func NewCreateUsersResponse(result *usecase.CreateUsersResult) CreateUsersResponse {
	skipped := make([]SkippedUserResponse, 0, len(result.Skipped))
	for _, s := range result.Skipped {
		skipped = append(skipped, SkippedUserResponse{Email: s.Email, Reason: s.Reason, Code: s.Code})
	}

	return CreateUsersResponse{
		CreatedUsers: NewUserListResponse(result.Created),
		SkippedUsers: skipped,
	}
}
