package database

import (
	"context"
	"fmt"

	coreport "github.com/amirhossein-jamali/ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/ledger/internal/domain/port/persistence"
)

// UnitOfWork serializes ledger access with the LedgerDB lock.
// Writers take the lock exclusively; readers share it.
type UnitOfWork struct {
	db     *LedgerDB
	logger coreport.Logger
}

// NewUnitOfWork creates a new UnitOfWork instance
func NewUnitOfWork(db *LedgerDB, logger coreport.Logger) persistence.UnitOfWork {
	return &UnitOfWork{
		db:     db,
		logger: logger,
	}
}

// Update runs fn while holding the write lock
func (u *UnitOfWork) Update(ctx context.Context, fn func(ledger persistence.Ledger) error) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("failed to begin ledger update: %w", err)
	}

	u.db.mu.Lock()
	defer u.db.mu.Unlock()

	u.logger.Debug("Ledger update started", nil)
	return fn(u.db)
}

// View runs fn while holding the read lock
func (u *UnitOfWork) View(ctx context.Context, fn func(ledger persistence.Ledger) error) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("failed to begin ledger read: %w", err)
	}

	u.db.mu.RLock()
	defer u.db.mu.RUnlock()

	return fn(u.db)
}
