package user

import (
	"context"
	"fmt"
	"sync"
	"testing"

	errs "github.com/amirhossein-jamali/ledger/internal/domain/error"
	"github.com/amirhossein-jamali/ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/ledger/internal/infrastructure/adapter/database"
	coremocks "github.com/amirhossein-jamali/ledger/mocks/port/core"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestUseCase(t *testing.T) (*UserUseCase, *coremocks.MockLedgerMetrics, *database.TestLedger) {
	t.Helper()

	ledger := database.NewTestLedger(t)
	metrics := coremocks.NewMockLedgerMetrics(t)

	return NewUserUseCase(ledger.UnitOfWork, ledger.TimeProvider, metrics, ledger.Logger), metrics, ledger
}

func candidate(name, email, balance string) usecase.CreateUserRequest {
	return usecase.CreateUserRequest{
		Name:    name,
		Email:   email,
		Balance: decimal.RequireFromString(balance),
	}
}

func TestCreateUsers(t *testing.T) {
	ctx := context.Background()

	t.Run("Creates users with sequential IDs", func(t *testing.T) {
		uc, metrics, _ := newTestUseCase(t)
		metrics.EXPECT().RecordUsersCreated(mock.Anything, 2).Once()
		metrics.EXPECT().RecordUsersSkipped(mock.Anything, 0).Once()

		result, err := uc.CreateUsers(ctx, []usecase.CreateUserRequest{
			candidate("Alice", "alice@example.com", "100.00"),
			candidate("Bob", "bob@example.com", "50"),
		})

		require.NoError(t, err)
		require.Len(t, result.Created, 2)
		assert.Empty(t, result.Skipped)

		assert.Equal(t, uint64(1), result.Created[0].ID)
		assert.Equal(t, "Alice", result.Created[0].Name)
		assert.Equal(t, "alice@example.com", result.Created[0].Email)
		assert.True(t, decimal.RequireFromString("100").Equal(result.Created[0].Balance))

		assert.Equal(t, uint64(2), result.Created[1].ID)
		assert.True(t, decimal.RequireFromString("50").Equal(result.Created[1].Balance))
	})

	t.Run("Duplicate email within a batch allocates no IDs", func(t *testing.T) {
		uc, metrics, _ := newTestUseCase(t)
		metrics.EXPECT().RecordUsersCreated(mock.Anything, 2).Once()
		metrics.EXPECT().RecordUsersSkipped(mock.Anything, 1).Once()

		result, err := uc.CreateUsers(ctx, []usecase.CreateUserRequest{
			candidate("A", "a@x", "10"),
			candidate("A2", "a@x", "20"),
			candidate("B", "b@x", "30"),
		})

		require.NoError(t, err)
		require.Len(t, result.Created, 2)
		assert.Equal(t, uint64(1), result.Created[0].ID)
		assert.Equal(t, "a@x", result.Created[0].Email)
		assert.Equal(t, uint64(2), result.Created[1].ID)
		assert.Equal(t, "b@x", result.Created[1].Email)
		assert.Equal(t, []usecase.SkippedUser{
			{Email: "a@x", Reason: errs.MsgEmailRegistered, Code: errs.CodeDuplicateEmail},
		}, result.Skipped)

		// The next user gets ID 3, so the skipped candidate consumed nothing
		metrics.EXPECT().RecordUsersCreated(mock.Anything, 1).Once()
		metrics.EXPECT().RecordUsersSkipped(mock.Anything, 0).Once()

		next, err := uc.CreateUsers(ctx, []usecase.CreateUserRequest{candidate("C", "c@x", "0")})
		require.NoError(t, err)
		require.Len(t, next.Created, 1)
		assert.Equal(t, uint64(3), next.Created[0].ID)
	})

	t.Run("Email registered by an earlier batch is skipped", func(t *testing.T) {
		uc, metrics, _ := newTestUseCase(t)
		metrics.EXPECT().RecordUsersCreated(mock.Anything, 1).Once()
		metrics.EXPECT().RecordUsersSkipped(mock.Anything, 0).Once()

		_, err := uc.CreateUsers(ctx, []usecase.CreateUserRequest{candidate("Alice", "alice@example.com", "100")})
		require.NoError(t, err)

		metrics.EXPECT().RecordUsersCreated(mock.Anything, 0).Once()
		metrics.EXPECT().RecordUsersSkipped(mock.Anything, 1).Once()

		result, err := uc.CreateUsers(ctx, []usecase.CreateUserRequest{candidate("Alice Again", "alice@example.com", "5")})

		require.NoError(t, err)
		assert.Empty(t, result.Created)
		require.Len(t, result.Skipped, 1)
		assert.Equal(t, "alice@example.com", result.Skipped[0].Email)
		assert.Equal(t, errs.MsgEmailRegistered, result.Skipped[0].Reason)
		assert.Equal(t, errs.CodeDuplicateEmail, result.Skipped[0].Code)
	})

	t.Run("Invalid balance is skipped", func(t *testing.T) {
		uc, metrics, ledger := newTestUseCase(t)
		metrics.EXPECT().RecordUsersCreated(mock.Anything, 1).Once()
		metrics.EXPECT().RecordUsersSkipped(mock.Anything, 2).Once()

		result, err := uc.CreateUsers(ctx, []usecase.CreateUserRequest{
			candidate("Neg", "neg@x", "-1"),
			candidate("Precise", "precise@x", "1.005"),
			candidate("Ok", "ok@x", "1.50"),
		})

		require.NoError(t, err)
		require.Len(t, result.Created, 1)
		assert.Equal(t, uint64(1), result.Created[0].ID)
		assert.Equal(t, []usecase.SkippedUser{
			{Email: "neg@x", Reason: errs.MsgInvalidBalance, Code: errs.CodeInvalidAmount},
			{Email: "precise@x", Reason: errs.MsgInvalidBalance, Code: errs.CodeInvalidAmount},
		}, result.Skipped)
		assert.Equal(t, 1, ledger.DB.Users().Count())
	})

	t.Run("Empty batch", func(t *testing.T) {
		uc, metrics, _ := newTestUseCase(t)
		metrics.EXPECT().RecordUsersCreated(mock.Anything, 0).Once()
		metrics.EXPECT().RecordUsersSkipped(mock.Anything, 0).Once()

		result, err := uc.CreateUsers(ctx, nil)

		require.NoError(t, err)
		assert.Empty(t, result.Created)
		assert.Empty(t, result.Skipped)
	})

	t.Run("Cancelled context", func(t *testing.T) {
		uc, _, ledger := newTestUseCase(t)
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		result, err := uc.CreateUsers(cancelled, []usecase.CreateUserRequest{candidate("A", "a@x", "1")})

		require.Error(t, err)
		assert.ErrorIs(t, err, context.Canceled)
		assert.Nil(t, result)
		assert.Equal(t, 0, ledger.DB.Users().Count())
	})
}

func TestCreateUsersConcurrentEmailUniqueness(t *testing.T) {
	ctx := context.Background()
	uc, metrics, _ := newTestUseCase(t)
	metrics.EXPECT().RecordUsersCreated(mock.Anything, mock.Anything).Return()
	metrics.EXPECT().RecordUsersSkipped(mock.Anything, mock.Anything).Return()

	const workers = 20
	var wg sync.WaitGroup
	createdShared := make(chan uint64, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			result, err := uc.CreateUsers(ctx, []usecase.CreateUserRequest{
				candidate("Shared", "shared@example.com", "10"),
				candidate(fmt.Sprintf("User %d", i), fmt.Sprintf("user%d@example.com", i), "10"),
			})
			if !assert.NoError(t, err) {
				return
			}
			for _, created := range result.Created {
				if created.Email == "shared@example.com" {
					createdShared <- created.ID
				}
			}
		}(i)
	}
	wg.Wait()
	close(createdShared)

	assert.Len(t, createdShared, 1)

	views, err := uc.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, views, workers+1)

	emails := make(map[string]bool, len(views))
	for i, view := range views {
		assert.Equal(t, uint64(i+1), view.ID)
		assert.False(t, emails[view.Email], "duplicate email %s", view.Email)
		emails[view.Email] = true
	}
}
