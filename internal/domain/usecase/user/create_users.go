package user

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/ledger/internal/domain/error"
	"github.com/amirhossein-jamali/ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/ledger/internal/domain/port/usecase"
)

// CreateUsers creates the candidates in input order under one exclusive ledger lock.
// A candidate whose email is already registered, by an earlier call or earlier in
// the same batch, is skipped before any ID is allocated for it. So is a candidate
// with a negative balance or one finer than cents.
func (u *UserUseCase) CreateUsers(ctx context.Context, requests []usecase.CreateUserRequest) (*usecase.CreateUsersResult, error) {
	result := &usecase.CreateUsersResult{
		Created: make([]entity.UserView, 0, len(requests)),
		Skipped: make([]usecase.SkippedUser, 0),
	}

	var totalUsers int
	err := u.uow.Update(ctx, func(ledger persistence.Ledger) error {
		defer func() { totalUsers = ledger.Users().Count() }()

		for _, req := range requests {
			if ledger.Users().EmailExists(req.Email) {
				result.Skipped = append(result.Skipped, skippedUser(req.Email,
					errs.NewInvalidError(errs.MsgEmailRegistered, errs.ErrDuplicateEmail)))
				continue
			}

			if err := entity.ValidateAmount(req.Balance); err != nil {
				result.Skipped = append(result.Skipped, skippedUser(req.Email,
					errs.NewInvalidError(errs.MsgInvalidBalance, err)))
				continue
			}

			view, err := u.insertUser(ledger, req)
			if err != nil {
				return err
			}
			result.Created = append(result.Created, view)
		}
		return nil
	})
	if err != nil {
		u.logger.Error("Failed to create users", map[string]any{
			"requested": len(requests),
			"created":   len(result.Created),
			"error":     err.Error(),
		})
		return nil, fmt.Errorf("create users: %w", err)
	}

	u.metrics.RecordUsersCreated(ctx, len(result.Created))
	u.metrics.RecordUsersSkipped(ctx, len(result.Skipped))

	u.logger.Info("Users created", map[string]any{
		"requested": len(requests),
		"created":   len(result.Created),
		"skipped":   len(result.Skipped),
		"total":     totalUsers,
	})

	return result, nil
}

func skippedUser(email string, err error) usecase.SkippedUser {
	return usecase.SkippedUser{
		Email:  email,
		Reason: err.Error(),
		Code:   errs.ErrorCode(err),
	}
}

// insertUser allocates IDs and stores the balance record before the user that owns it
func (u *UserUseCase) insertUser(ledger persistence.Ledger, req usecase.CreateUserRequest) (entity.UserView, error) {
	userID := ledger.IDs().NextUserID()
	balanceID := ledger.IDs().NextBalanceID()

	balance, err := entity.NewBalance(balanceID, req.Balance, u.timeProvider)
	if err != nil {
		return entity.UserView{}, fmt.Errorf("%w: new balance %d: %w", errs.ErrInternalServer, balanceID, err)
	}

	user, err := entity.NewUser(userID, req.Name, req.Email, balanceID, u.timeProvider)
	if err != nil {
		return entity.UserView{}, fmt.Errorf("%w: new user %d: %w", errs.ErrInternalServer, userID, err)
	}

	ledger.Balances().Insert(balance)
	ledger.Users().Insert(user)

	u.logger.Debug("User created", map[string]any{
		"userId":    userID,
		"balanceId": balanceID,
		"balance":   entity.FormatAmount(balance.Amount()),
	})

	return entity.NewUserView(user, balance), nil
}
