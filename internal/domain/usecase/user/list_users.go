package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/amirhossein-jamali/ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/ledger/internal/domain/error"
	"github.com/amirhossein-jamali/ledger/internal/domain/port/persistence"
)

// ListUsers returns every user joined with its balance, ascending by ID
func (u *UserUseCase) ListUsers(ctx context.Context) ([]entity.UserView, error) {
	var views []entity.UserView

	err := u.uow.View(ctx, func(ledger persistence.Ledger) error {
		users := ledger.Users().List()
		views = make([]entity.UserView, 0, len(users))

		for _, user := range users {
			view, err := viewOf(ledger, user)
			if err != nil {
				return err
			}
			views = append(views, view)
		}
		return nil
	})
	if err != nil {
		u.logger.Error("Failed to list users", map[string]any{
			"error": err.Error(),
		})
		return nil, fmt.Errorf("list users: %w", err)
	}

	return views, nil
}

// GetUser returns a single user joined with its balance
func (u *UserUseCase) GetUser(ctx context.Context, userID uint64) (*entity.UserView, error) {
	var view entity.UserView

	err := u.uow.View(ctx, func(ledger persistence.Ledger) error {
		user, err := ledger.Users().GetByID(userID)
		if err != nil {
			return err
		}

		view, err = viewOf(ledger, user)
		return err
	})
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			return nil, errs.NewNotFoundError(errs.MsgUserNotFound, errs.ErrUserNotFound)
		}

		u.logger.Error("Failed to get user", map[string]any{
			"userId": userID,
			"error":  err.Error(),
		})
		return nil, fmt.Errorf("get user %d: %w", userID, err)
	}

	return &view, nil
}

// viewOf joins a user with its balance record.
// A missing balance for an existing user is a consistency fault.
func viewOf(ledger persistence.Ledger, user *entity.User) (entity.UserView, error) {
	balance, err := ledger.Balances().GetByID(user.BalanceID)
	if err != nil {
		return entity.UserView{}, fmt.Errorf("%w: user %d: %w", errs.ErrInternalServer, user.ID, err)
	}
	return entity.NewUserView(user, balance), nil
}
