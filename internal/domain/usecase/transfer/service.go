package transfer

import (
	coreport "github.com/amirhossein-jamali/ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/ledger/internal/domain/port/usecase"
)

var _ usecase.TransferUseCase = (*Service)(nil)

// Service executes transfers between users.
// Every transfer runs inside one exclusive unit of work, so the balance read by
// the rules is the balance the debit is applied to.
type Service struct {
	uow          persistence.UnitOfWork
	timeProvider coreport.TimeProvider
	metrics      coreport.LedgerMetrics
	logger       coreport.Logger
}

// NewTransferService creates a new transfer service
func NewTransferService(
	uow persistence.UnitOfWork,
	timeProvider coreport.TimeProvider,
	metrics coreport.LedgerMetrics,
	logger coreport.Logger,
) *Service {
	return &Service{
		uow:          uow,
		timeProvider: timeProvider,
		metrics:      metrics,
		logger:       logger,
	}
}
