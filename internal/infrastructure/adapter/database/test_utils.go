package database

import (
	"testing"

	coreport "github.com/amirhossein-jamali/ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/ledger/internal/infrastructure/adapter/logger"
	timeprovider "github.com/amirhossein-jamali/ledger/internal/infrastructure/adapter/time"
)

// TestLedger bundles an empty ledger with its unit of work for tests
type TestLedger struct {
	DB           *LedgerDB
	UnitOfWork   persistence.UnitOfWork
	Logger       coreport.Logger
	TimeProvider coreport.TimeProvider
}

// NewTestLedger creates an empty ledger backed by a real clock and a no-op logger
func NewTestLedger(t *testing.T) *TestLedger {
	t.Helper()

	log := logger.NewNoopLogger()
	tp := timeprovider.NewRealTimeProvider()
	db := NewLedgerDB(tp, log)

	return &TestLedger{
		DB:           db,
		UnitOfWork:   NewUnitOfWork(db, log),
		Logger:       log,
		TimeProvider: tp,
	}
}
