package entity

import (
	"time"

	errs "github.com/amirhossein-jamali/ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/ledger/internal/domain/port/core"
	"github.com/shopspring/decimal"
)

// User represents a ledger participant. Identity fields never change after creation.
type User struct {
	ID        uint64    // Unique identifier for the user
	Name      string    // Display name
	Email     string    // Unique across all users
	BalanceID uint64    // The user's balance record, assigned once
	CreatedAt time.Time // When the user was created
}

// NewUser creates a new user bound to an already allocated balance record
func NewUser(id uint64, name, email string, balanceID uint64, timeProvider coreport.TimeProvider) (*User, error) {
	if id == 0 || balanceID == 0 {
		return nil, errs.ErrInvalidUserID
	}

	return &User{
		ID:        id,
		Name:      name,
		Email:     email,
		BalanceID: balanceID,
		CreatedAt: timeProvider.Now(),
	}, nil
}

// UserView is the read projection of a user joined with its balance
type UserView struct {
	ID      uint64
	Name    string
	Email   string
	Balance decimal.Decimal
}

// NewUserView builds the projection from a user and its balance record
func NewUserView(user *User, balance *Balance) UserView {
	return UserView{
		ID:      user.ID,
		Name:    user.Name,
		Email:   user.Email,
		Balance: balance.Amount(),
	}
}
