package repository

import (
	"fmt"

	"github.com/amirhossein-jamali/ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/ledger/internal/infrastructure/adapter/model"
	"github.com/shopspring/decimal"
)

// getOperationType returns "credit" for positive or zero changes and "debit" for negative changes
func getOperationType(delta decimal.Decimal) string {
	if delta.IsNegative() {
		return "debit"
	}
	return "credit"
}

// BalanceRepository keeps balance rows in memory
type BalanceRepository struct {
	rows         map[uint64]model.Balance
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewBalanceRepository creates an empty BalanceRepository
func NewBalanceRepository(timeProvider coreport.TimeProvider, logger coreport.Logger) *BalanceRepository {
	return &BalanceRepository{
		rows:         make(map[uint64]model.Balance),
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Insert stores a new balance row
func (r *BalanceRepository) Insert(balance *entity.Balance) {
	r.save(balance)
}

// GetByID retrieves a balance record by ID
func (r *BalanceRepository) GetByID(id uint64) (*entity.Balance, error) {
	row, ok := r.rows[id]
	if !ok {
		r.logger.Error("Balance record missing", map[string]any{
			"balance_id": id,
		})
		return nil, fmt.Errorf("%w: id %d", errs.ErrBalanceNotFound, id)
	}
	return entity.RestoreBalance(row.ID, row.Amount, row.UpdatedAt), nil
}

// Adjust adds a signed delta to the balance record
func (r *BalanceRepository) Adjust(id uint64, delta decimal.Decimal) (*entity.Balance, error) {
	balance, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}

	if err := balance.Apply(delta, r.timeProvider); err != nil {
		r.logger.Warn("Balance adjustment rejected", map[string]any{
			"balance_id": id,
			"operation":  getOperationType(delta),
			"delta":      entity.FormatAmount(delta),
			"error":      err.Error(),
		})
		return nil, err
	}

	r.save(balance)

	r.logger.Debug("Balance adjusted", map[string]any{
		"balance_id":  id,
		"operation":   getOperationType(delta),
		"delta":       entity.FormatAmount(delta),
		"new_balance": entity.FormatAmount(balance.Amount()),
	})

	return balance, nil
}

// Transfer debits one record and credits another. Both changes are computed
// before either row is written.
func (r *BalanceRepository) Transfer(fromID, toID uint64, amount decimal.Decimal) (*entity.Balance, *entity.Balance, error) {
	if fromID == toID {
		return nil, nil, fmt.Errorf("%w: balance record %d", errs.ErrSelfTransfer, fromID)
	}

	from, err := r.GetByID(fromID)
	if err != nil {
		return nil, nil, err
	}
	to, err := r.GetByID(toID)
	if err != nil {
		return nil, nil, err
	}

	if err := from.Apply(amount.Neg(), r.timeProvider); err != nil {
		return nil, nil, err
	}
	if err := to.Apply(amount, r.timeProvider); err != nil {
		return nil, nil, err
	}

	r.save(from)
	r.save(to)

	r.logger.Debug("Balances transferred", map[string]any{
		"from_balance_id": fromID,
		"to_balance_id":   toID,
		"amount":          entity.FormatAmount(amount),
	})

	return from, to, nil
}

func (r *BalanceRepository) save(balance *entity.Balance) {
	r.rows[balance.ID] = model.Balance{
		ID:        balance.ID,
		Amount:    balance.Amount(),
		UpdatedAt: balance.UpdatedAt,
	}
}
