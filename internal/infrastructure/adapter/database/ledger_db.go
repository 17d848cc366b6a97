package database

import (
	"sync"

	coreport "github.com/amirhossein-jamali/ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/ledger/internal/infrastructure/adapter/repository"
)

// LedgerDB is the process-lifetime in-memory ledger.
// Every access to its repositories goes through a UnitOfWork holding mu.
type LedgerDB struct {
	mu       sync.RWMutex
	users    *repository.UserRepository
	balances *repository.BalanceRepository
	ids      *repository.IDCounter
	logger   coreport.Logger
}

// NewLedgerDB creates an empty ledger
func NewLedgerDB(timeProvider coreport.TimeProvider, logger coreport.Logger) *LedgerDB {
	logger.Info("Initializing in-memory ledger", nil)

	return &LedgerDB{
		users:    repository.NewUserRepository(logger),
		balances: repository.NewBalanceRepository(timeProvider, logger),
		ids:      repository.NewIDCounter(),
		logger:   logger,
	}
}

// Users returns the user repository
func (db *LedgerDB) Users() persistence.UserRepository {
	return db.users
}

// Balances returns the balance repository
func (db *LedgerDB) Balances() persistence.BalanceRepository {
	return db.balances
}

// IDs returns the identifier allocator
func (db *LedgerDB) IDs() persistence.IDAllocator {
	return db.ids
}
