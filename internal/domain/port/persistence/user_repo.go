package persistence

import (
	"github.com/amirhossein-jamali/ledger/internal/domain/entity"
)

// UserRepository defines access to user records.
// Implementations are not synchronized; use them only inside a UnitOfWork.
type UserRepository interface {
	// Insert stores a user whose ID was freshly allocated
	// Callers guarantee the ID and email are not already present
	Insert(user *entity.User)

	// GetByID retrieves a user by ID
	//
	// Possible errors:
	// - ErrUserNotFound: If user with specified ID doesn't exist
	GetByID(id uint64) (*entity.User, error)

	// EmailExists reports whether any user already holds the email
	EmailExists(email string) bool

	// List returns all users in ascending ID order
	List() []*entity.User

	// Count returns the number of stored users
	Count() int
}
