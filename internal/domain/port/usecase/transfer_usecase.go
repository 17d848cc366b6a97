package usecase

import (
	"context"

	"github.com/amirhossein-jamali/ledger/internal/domain/entity"
)

// TransferUseCase defines methods for moving money between users
type TransferUseCase interface {
	// ExecuteTransfer validates and applies a transfer
	// Failures are returned as *BusinessLogicError values and leave every balance unchanged
	ExecuteTransfer(ctx context.Context, transfer entity.Transfer) (*entity.TransferReceipt, error)
}
