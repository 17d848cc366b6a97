// Package seed creates the users listed in configuration when the service starts.
package seed

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/ledger/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/ledger/internal/infrastructure/config"
)

// CreateDefaultUsers creates the configured users as one batch.
// Users whose email is already registered are skipped like any other batch candidate.
func CreateDefaultUsers(
	ctx context.Context,
	users usecase.UserUseCase,
	seeds []config.SeedUserConfig,
	logger coreport.Logger,
) (*usecase.CreateUsersResult, error) {
	requests := make([]usecase.CreateUserRequest, 0, len(seeds))
	for _, s := range seeds {
		balance, err := entity.ParseAmount(s.Balance)
		if err != nil {
			return nil, fmt.Errorf("seed user %q: %w", s.Email, err)
		}

		requests = append(requests, usecase.CreateUserRequest{
			Name:    s.Name,
			Email:   s.Email,
			Balance: balance,
		})
	}

	result, err := users.CreateUsers(ctx, requests)
	if err != nil {
		return nil, fmt.Errorf("seed users: %w", err)
	}

	for _, skipped := range result.Skipped {
		logger.Info("Default user skipped", map[string]any{
			"email":  skipped.Email,
			"reason": skipped.Reason,
		})
	}
	logger.Info("Default users created or verified", map[string]any{
		"created": len(result.Created),
		"skipped": len(result.Skipped),
	})

	return result, nil
}
