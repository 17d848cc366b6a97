package persistence

import (
	"github.com/amirhossein-jamali/ledger/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// BalanceRepository defines access to balance records.
// Implementations are not synchronized; use them only inside a UnitOfWork.
type BalanceRepository interface {
	// Insert stores a balance record whose ID was freshly allocated
	Insert(balance *entity.Balance)

	// GetByID retrieves a balance record by ID
	//
	// Possible errors:
	// - ErrBalanceNotFound: If the record is missing (an internal consistency fault)
	GetByID(id uint64) (*entity.Balance, error)

	// Adjust adds a signed delta to a balance record and returns the updated record
	//
	// Possible errors:
	// - ErrBalanceNotFound: If the record is missing
	// - ErrNegativeBalance: If the result would drop below zero; nothing is changed
	Adjust(id uint64, delta decimal.Decimal) (*entity.Balance, error)

	// Transfer debits fromID and credits toID by amount as one step.
	// Either both records change or neither does.
	//
	// Possible errors:
	// - ErrBalanceNotFound: If either record is missing
	// - ErrSelfTransfer: If both IDs refer to the same record
	// - ErrNegativeBalance: If either side would drop below zero
	Transfer(fromID, toID uint64, amount decimal.Decimal) (from, to *entity.Balance, err error)
}
