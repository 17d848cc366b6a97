package repository

import (
	"github.com/amirhossein-jamali/ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/ledger/internal/infrastructure/adapter/model"
)

// UserRepository keeps user rows in memory.
// Rows are inserted with ascending IDs and never deleted, so insertion order is ID order.
type UserRepository struct {
	rows   map[uint64]model.User
	order  []uint64
	emails map[string]uint64
	logger coreport.Logger
}

// NewUserRepository creates an empty UserRepository
func NewUserRepository(logger coreport.Logger) *UserRepository {
	return &UserRepository{
		rows:   make(map[uint64]model.User),
		emails: make(map[string]uint64),
		logger: logger,
	}
}

// modelToEntity converts a user row to an entity
func modelToEntity(row model.User) *entity.User {
	return &entity.User{
		ID:        row.ID,
		Name:      row.Name,
		Email:     row.Email,
		BalanceID: row.BalanceID,
		CreatedAt: row.CreatedAt,
	}
}

// Insert stores a new user row
func (r *UserRepository) Insert(user *entity.User) {
	r.rows[user.ID] = model.User{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		BalanceID: user.BalanceID,
		CreatedAt: user.CreatedAt,
	}
	r.order = append(r.order, user.ID)
	r.emails[user.Email] = user.ID

	r.logger.Debug("User row inserted", map[string]any{
		"user_id":    user.ID,
		"balance_id": user.BalanceID,
	})
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(id uint64) (*entity.User, error) {
	row, ok := r.rows[id]
	if !ok {
		return nil, errs.ErrUserNotFound
	}
	return modelToEntity(row), nil
}

// EmailExists reports whether the email is already registered
func (r *UserRepository) EmailExists(email string) bool {
	_, ok := r.emails[email]
	return ok
}

// List returns all users in ascending ID order
func (r *UserRepository) List() []*entity.User {
	users := make([]*entity.User, 0, len(r.order))
	for _, id := range r.order {
		users = append(users, modelToEntity(r.rows[id]))
	}
	return users
}

// Count returns the number of stored users
func (r *UserRepository) Count() int {
	return len(r.order)
}
