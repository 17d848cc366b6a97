package core

import "context"

// TransferOutcome labels a transfer attempt for metrics
type TransferOutcome string

const (
	TransferSucceeded TransferOutcome = "succeeded"
	TransferInvalid   TransferOutcome = "invalid"
	TransferNotFound  TransferOutcome = "not_found"
	TransferFailed    TransferOutcome = "failed"
)

// LedgerMetrics records ledger activity counters
type LedgerMetrics interface {
	// RecordTransfer counts one transfer attempt with its outcome
	RecordTransfer(ctx context.Context, outcome TransferOutcome)
	// RecordUsersCreated counts users created by a batch
	RecordUsersCreated(ctx context.Context, count int)
	// RecordUsersSkipped counts batch candidates skipped for duplicate emails
	RecordUsersSkipped(ctx context.Context, count int)
}
