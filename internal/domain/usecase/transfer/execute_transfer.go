package transfer

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/ledger/internal/domain/rule"
)

// ExecuteTransfer moves the amount from one user to another.
//
// The steps run under the exclusive ledger lock:
// 1. Both users must exist, otherwise NotFound regardless of any rule
// 2. The sender's balance is read
// 3. The transfer rules are checked in order; the first broken one is returned
// 4. Debit and credit are applied together
//
// Nothing is mutated when an error is returned.
func (s *Service) ExecuteTransfer(ctx context.Context, transfer entity.Transfer) (*entity.TransferReceipt, error) {
	var receipt *entity.TransferReceipt

	err := s.uow.Update(ctx, func(ledger persistence.Ledger) error {
		var err error
		receipt, err = s.execute(ledger, transfer)
		return err
	})

	outcome := outcomeOf(err)
	s.metrics.RecordTransfer(ctx, outcome)

	fields := map[string]any{
		"fromUserId": transfer.FromUserID,
		"toUserId":   transfer.ToUserID,
		"amount":     entity.FormatAmount(transfer.Amount),
		"outcome":    string(outcome),
	}

	switch outcome {
	case coreport.TransferSucceeded:
		fields["fromBalance"] = entity.FormatAmount(receipt.FromBalance)
		fields["toBalance"] = entity.FormatAmount(receipt.ToBalance)
		s.logger.Info("Transfer executed", fields)
		return receipt, nil

	case coreport.TransferInvalid, coreport.TransferNotFound:
		if ble, ok := errs.AsBusinessLogicError(err); ok {
			for k, v := range ble.LogFields() {
				fields[k] = v
			}
		}
		s.logger.Warn("Transfer rejected", fields)
		return nil, err

	default:
		fields["error"] = err.Error()
		s.logger.Error("Transfer failed", fields)
		return nil, fmt.Errorf("execute transfer: %w", err)
	}
}

func (s *Service) execute(ledger persistence.Ledger, transfer entity.Transfer) (*entity.TransferReceipt, error) {
	from, fromErr := ledger.Users().GetByID(transfer.FromUserID)
	to, toErr := ledger.Users().GetByID(transfer.ToUserID)
	if fromErr != nil || toErr != nil {
		return nil, errs.NewNotFoundError(errs.MsgUsersNotFound, errs.ErrUserNotFound)
	}

	fromBalance, err := ledger.Balances().GetByID(from.BalanceID)
	if err != nil {
		return nil, fmt.Errorf("%w: sender %d: %w", errs.ErrInternalServer, from.ID, err)
	}

	validator := rule.NewRuleValidator(
		rule.TransferRules(transfer.FromUserID, transfer.ToUserID, fromBalance.Amount(), transfer.Amount)...,
	)
	if err := validator.Check(); err != nil {
		return nil, err
	}

	fromAfter, toAfter, err := ledger.Balances().Transfer(from.BalanceID, to.BalanceID, transfer.Amount)
	if err != nil {
		return nil, fmt.Errorf("%w: apply transfer: %w", errs.ErrInternalServer, err)
	}

	return &entity.TransferReceipt{
		FromUserID:  from.ID,
		ToUserID:    to.ID,
		Amount:      transfer.Amount,
		FromBalance: fromAfter.Amount(),
		ToBalance:   toAfter.Amount(),
		ExecutedAt:  s.timeProvider.Now(),
	}, nil
}

// outcomeOf classifies a transfer result for metrics and logging
func outcomeOf(err error) coreport.TransferOutcome {
	switch {
	case err == nil:
		return coreport.TransferSucceeded
	case errs.IsNotFoundError(err):
		return coreport.TransferNotFound
	case errs.IsInvalidError(err):
		return coreport.TransferInvalid
	default:
		return coreport.TransferFailed
	}
}
