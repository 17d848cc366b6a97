package user

import (
	coreport "github.com/amirhossein-jamali/ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/ledger/internal/domain/port/usecase"
)

var _ usecase.UserUseCase = (*UserUseCase)(nil)

// UserUseCase handles user-related business logic
type UserUseCase struct {
	uow          persistence.UnitOfWork
	timeProvider coreport.TimeProvider
	metrics      coreport.LedgerMetrics
	logger       coreport.Logger
}

// NewUserUseCase creates a new UserUseCase
func NewUserUseCase(
	uow persistence.UnitOfWork,
	timeProvider coreport.TimeProvider,
	metrics coreport.LedgerMetrics,
	logger coreport.Logger,
) *UserUseCase {
	return &UserUseCase{
		uow:          uow,
		timeProvider: timeProvider,
		metrics:      metrics,
		logger:       logger,
	}
}
