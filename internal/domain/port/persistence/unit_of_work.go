package persistence

import (
	"context"
)

// Ledger exposes the repositories bound to a unit of work
type Ledger interface {
	Users() UserRepository
	Balances() BalanceRepository
	IDs() IDAllocator
}

// UnitOfWork coordinates access to the ledger so that a read-validate-write
// sequence is observed as a single step by concurrent callers
type UnitOfWork interface {
	// Update runs fn with exclusive access to the ledger
	Update(ctx context.Context, fn func(ledger Ledger) error) error

	// View runs fn with shared access; fn must not mutate the ledger
	View(ctx context.Context, fn func(ledger Ledger) error) error
}
