package transfer

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/amirhossein-jamali/ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/ledger/internal/infrastructure/adapter/database"
	coremocks "github.com/amirhossein-jamali/ledger/mocks/port/core"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func amount(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func seedUser(t *testing.T, ledger *database.TestLedger, email, balance string) uint64 {
	t.Helper()

	var userID uint64
	err := ledger.UnitOfWork.Update(context.Background(), func(l persistence.Ledger) error {
		userID = l.IDs().NextUserID()
		balanceID := l.IDs().NextBalanceID()

		b, err := entity.NewBalance(balanceID, amount(balance), ledger.TimeProvider)
		if err != nil {
			return err
		}
		u, err := entity.NewUser(userID, email, email, balanceID, ledger.TimeProvider)
		if err != nil {
			return err
		}

		l.Balances().Insert(b)
		l.Users().Insert(u)
		return nil
	})
	require.NoError(t, err)

	return userID
}

func balanceOf(t *testing.T, ledger *database.TestLedger, userID uint64) decimal.Decimal {
	t.Helper()

	var result decimal.Decimal
	err := ledger.UnitOfWork.View(context.Background(), func(l persistence.Ledger) error {
		u, err := l.Users().GetByID(userID)
		if err != nil {
			return err
		}
		b, err := l.Balances().GetByID(u.BalanceID)
		if err != nil {
			return err
		}
		result = b.Amount()
		return nil
	})
	require.NoError(t, err)

	return result
}

func totalOf(t *testing.T, ledger *database.TestLedger) decimal.Decimal {
	t.Helper()

	var amounts []decimal.Decimal
	err := ledger.UnitOfWork.View(context.Background(), func(l persistence.Ledger) error {
		for _, u := range l.Users().List() {
			b, err := l.Balances().GetByID(u.BalanceID)
			if err != nil {
				return err
			}
			amounts = append(amounts, b.Amount())
		}
		return nil
	})
	require.NoError(t, err)

	return entity.SumAmounts(amounts...)
}

func newTestService(t *testing.T, ledger *database.TestLedger, timeProvider coreport.TimeProvider) (*Service, *coremocks.MockLedgerMetrics) {
	t.Helper()

	metrics := coremocks.NewMockLedgerMetrics(t)
	return NewTransferService(ledger.UnitOfWork, timeProvider, metrics, ledger.Logger), metrics
}

func TestExecuteTransfer(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)

	t.Run("Successful transfer conserves the total", func(t *testing.T) {
		ledger := database.NewTestLedger(t)
		alice := seedUser(t, ledger, "alice@example.com", "100.00")
		bob := seedUser(t, ledger, "bob@example.com", "25.50")
		before := totalOf(t, ledger)

		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime).Once()
		svc, metrics := newTestService(t, ledger, mockTime)
		metrics.EXPECT().RecordTransfer(mock.Anything, coreport.TransferSucceeded).Once()

		receipt, err := svc.ExecuteTransfer(ctx, entity.Transfer{FromUserID: alice, ToUserID: bob, Amount: amount("40.25")})

		require.NoError(t, err)
		assert.Equal(t, alice, receipt.FromUserID)
		assert.Equal(t, bob, receipt.ToUserID)
		assert.True(t, amount("40.25").Equal(receipt.Amount))
		assert.True(t, amount("59.75").Equal(receipt.FromBalance))
		assert.True(t, amount("65.75").Equal(receipt.ToBalance))
		assert.Equal(t, fixedTime, receipt.ExecutedAt)

		assert.True(t, amount("59.75").Equal(balanceOf(t, ledger, alice)))
		assert.True(t, amount("65.75").Equal(balanceOf(t, ledger, bob)))
		assert.True(t, before.Equal(totalOf(t, ledger)))
	})

	t.Run("Whole balance can be transferred", func(t *testing.T) {
		ledger := database.NewTestLedger(t)
		alice := seedUser(t, ledger, "alice@example.com", "10")
		bob := seedUser(t, ledger, "bob@example.com", "0")

		svc, metrics := newTestService(t, ledger, ledger.TimeProvider)
		metrics.EXPECT().RecordTransfer(mock.Anything, coreport.TransferSucceeded).Once()

		_, err := svc.ExecuteTransfer(ctx, entity.Transfer{FromUserID: alice, ToUserID: bob, Amount: amount("10")})

		require.NoError(t, err)
		assert.True(t, balanceOf(t, ledger, alice).IsZero())
		assert.True(t, amount("10").Equal(balanceOf(t, ledger, bob)))
	})

	t.Run("Insufficient balance", func(t *testing.T) {
		ledger := database.NewTestLedger(t)
		alice := seedUser(t, ledger, "alice@example.com", "5")
		bob := seedUser(t, ledger, "bob@example.com", "0")

		svc, metrics := newTestService(t, ledger, ledger.TimeProvider)
		metrics.EXPECT().RecordTransfer(mock.Anything, coreport.TransferInvalid).Once()

		receipt, err := svc.ExecuteTransfer(ctx, entity.Transfer{FromUserID: alice, ToUserID: bob, Amount: amount("5.01")})

		require.Error(t, err)
		assert.Nil(t, receipt)
		assert.True(t, errs.IsInvalidError(err))
		assert.ErrorIs(t, err, errs.ErrInsufficientBalance)
		assert.Equal(t, errs.MsgInsufficientBalance, err.Error())
		assert.True(t, amount("5").Equal(balanceOf(t, ledger, alice)))
		assert.True(t, balanceOf(t, ledger, bob).IsZero())
	})

	t.Run("Self transfer", func(t *testing.T) {
		ledger := database.NewTestLedger(t)
		alice := seedUser(t, ledger, "alice@example.com", "100")

		svc, metrics := newTestService(t, ledger, ledger.TimeProvider)
		metrics.EXPECT().RecordTransfer(mock.Anything, coreport.TransferInvalid).Once()

		_, err := svc.ExecuteTransfer(ctx, entity.Transfer{FromUserID: alice, ToUserID: alice, Amount: amount("10")})

		require.Error(t, err)
		assert.True(t, errs.IsInvalidError(err))
		assert.Equal(t, errs.MsgSelfTransfer, err.Error())
		assert.True(t, amount("100").Equal(balanceOf(t, ledger, alice)))
	})

	t.Run("Self transfer exceeding the balance reports the balance rule first", func(t *testing.T) {
		ledger := database.NewTestLedger(t)
		alice := seedUser(t, ledger, "alice@example.com", "1")

		svc, metrics := newTestService(t, ledger, ledger.TimeProvider)
		metrics.EXPECT().RecordTransfer(mock.Anything, coreport.TransferInvalid).Once()

		_, err := svc.ExecuteTransfer(ctx, entity.Transfer{FromUserID: alice, ToUserID: alice, Amount: amount("10")})

		require.Error(t, err)
		assert.True(t, errs.IsInvalidError(err))
		assert.Equal(t, errs.MsgInsufficientBalance, err.Error())
	})

	t.Run("Non-positive amount", func(t *testing.T) {
		ledger := database.NewTestLedger(t)
		alice := seedUser(t, ledger, "alice@example.com", "100")
		bob := seedUser(t, ledger, "bob@example.com", "100")

		for _, a := range []string{"0", "-5"} {
			svc, metrics := newTestService(t, ledger, ledger.TimeProvider)
			metrics.EXPECT().RecordTransfer(mock.Anything, coreport.TransferInvalid).Once()

			_, err := svc.ExecuteTransfer(ctx, entity.Transfer{FromUserID: alice, ToUserID: bob, Amount: amount(a)})

			require.Error(t, err, a)
			assert.Equal(t, errs.MsgNonPositiveAmount, err.Error())
			assert.ErrorIs(t, err, errs.ErrInvalidAmount)
		}
		assert.True(t, amount("100").Equal(balanceOf(t, ledger, alice)))
		assert.True(t, amount("100").Equal(balanceOf(t, ledger, bob)))
	})

	t.Run("Sub-cent amount leaves balances untouched", func(t *testing.T) {
		ledger := database.NewTestLedger(t)
		alice := seedUser(t, ledger, "alice@example.com", "100")
		bob := seedUser(t, ledger, "bob@example.com", "0")

		svc, metrics := newTestService(t, ledger, ledger.TimeProvider)
		metrics.EXPECT().RecordTransfer(mock.Anything, coreport.TransferInvalid).Once()

		_, err := svc.ExecuteTransfer(ctx, entity.Transfer{FromUserID: alice, ToUserID: bob, Amount: amount("0.005")})

		require.Error(t, err)
		assert.True(t, errs.IsInvalidError(err))
		assert.Equal(t, errs.MsgAmountPrecision, err.Error())
		assert.True(t, amount("100").Equal(balanceOf(t, ledger, alice)))
		assert.True(t, balanceOf(t, ledger, bob).IsZero())
	})

	t.Run("Unknown user dominates every rule", func(t *testing.T) {
		ledger := database.NewTestLedger(t)
		alice := seedUser(t, ledger, "alice@example.com", "1")

		cases := []entity.Transfer{
			{FromUserID: alice, ToUserID: 999, Amount: amount("1000")},
			{FromUserID: 999, ToUserID: alice, Amount: amount("1")},
			{FromUserID: 999, ToUserID: 999, Amount: amount("1000")},
			{FromUserID: 998, ToUserID: 999, Amount: amount("-1")},
		}

		for _, tc := range cases {
			svc, metrics := newTestService(t, ledger, ledger.TimeProvider)
			metrics.EXPECT().RecordTransfer(mock.Anything, coreport.TransferNotFound).Once()

			receipt, err := svc.ExecuteTransfer(ctx, tc)

			require.Error(t, err)
			assert.Nil(t, receipt)
			assert.True(t, errs.IsNotFoundError(err))
			assert.Equal(t, errs.MsgUsersNotFound, err.Error())
		}
		assert.True(t, amount("1").Equal(balanceOf(t, ledger, alice)))
	})

	t.Run("Missing balance record is an internal fault", func(t *testing.T) {
		ledger := database.NewTestLedger(t)
		alice := seedUser(t, ledger, "alice@example.com", "100")
		ledger.DB.Users().Insert(&entity.User{ID: 50, Name: "Ghost", Email: "ghost@x", BalanceID: 77})

		svc, metrics := newTestService(t, ledger, ledger.TimeProvider)
		metrics.EXPECT().RecordTransfer(mock.Anything, coreport.TransferFailed).Once()

		_, err := svc.ExecuteTransfer(ctx, entity.Transfer{FromUserID: alice, ToUserID: 50, Amount: amount("10")})

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInternalServer)
		assert.ErrorIs(t, err, errs.ErrBalanceNotFound)
		assert.False(t, errs.IsInvalidError(err))
		assert.True(t, amount("100").Equal(balanceOf(t, ledger, alice)))
	})

	t.Run("Cancelled context", func(t *testing.T) {
		ledger := database.NewTestLedger(t)
		alice := seedUser(t, ledger, "alice@example.com", "100")
		bob := seedUser(t, ledger, "bob@example.com", "0")

		svc, metrics := newTestService(t, ledger, ledger.TimeProvider)
		metrics.EXPECT().RecordTransfer(mock.Anything, coreport.TransferFailed).Once()

		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		_, err := svc.ExecuteTransfer(cancelled, entity.Transfer{FromUserID: alice, ToUserID: bob, Amount: amount("1")})

		require.Error(t, err)
		assert.ErrorIs(t, err, context.Canceled)
		assert.True(t, amount("100").Equal(balanceOf(t, ledger, alice)))
	})
}

func TestExecuteTransferScenario(t *testing.T) {
	ctx := context.Background()
	ledger := database.NewTestLedger(t)
	alice := seedUser(t, ledger, "alice@example.com", "100")
	bob := seedUser(t, ledger, "bob@example.com", "0")

	svc, metrics := newTestService(t, ledger, ledger.TimeProvider)

	metrics.EXPECT().RecordTransfer(mock.Anything, coreport.TransferSucceeded).Once()
	_, err := svc.ExecuteTransfer(ctx, entity.Transfer{FromUserID: alice, ToUserID: bob, Amount: amount("40")})
	require.NoError(t, err)
	assert.True(t, amount("60").Equal(balanceOf(t, ledger, alice)))
	assert.True(t, amount("40").Equal(balanceOf(t, ledger, bob)))

	metrics.EXPECT().RecordTransfer(mock.Anything, coreport.TransferInvalid).Twice()

	_, err = svc.ExecuteTransfer(ctx, entity.Transfer{FromUserID: bob, ToUserID: alice, Amount: amount("1000")})
	require.Error(t, err)
	assert.True(t, errs.IsInvalidError(err))

	_, err = svc.ExecuteTransfer(ctx, entity.Transfer{FromUserID: alice, ToUserID: alice, Amount: amount("10")})
	require.Error(t, err)
	assert.True(t, errs.IsInvalidError(err))

	metrics.EXPECT().RecordTransfer(mock.Anything, coreport.TransferNotFound).Once()
	_, err = svc.ExecuteTransfer(ctx, entity.Transfer{FromUserID: alice, ToUserID: 999, Amount: amount("10")})
	require.Error(t, err)
	assert.True(t, errs.IsNotFoundError(err))

	assert.True(t, amount("60").Equal(balanceOf(t, ledger, alice)))
	assert.True(t, amount("40").Equal(balanceOf(t, ledger, bob)))
}

func TestExecuteTransferConcurrentConservation(t *testing.T) {
	ctx := context.Background()
	ledger := database.NewTestLedger(t)

	const users = 5
	ids := make([]uint64, users)
	for i := range ids {
		ids[i] = seedUser(t, ledger, string(rune('a'+i))+"@example.com", "100")
	}
	before := totalOf(t, ledger)

	svc, metrics := newTestService(t, ledger, ledger.TimeProvider)
	metrics.EXPECT().RecordTransfer(mock.Anything, mock.Anything).Return()

	const workers = 50
	const transfersPerWorker = 40
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < transfersPerWorker; i++ {
				from := ids[(w+i)%users]
				to := ids[(w+i+1)%users]
				_, err := svc.ExecuteTransfer(ctx, entity.Transfer{FromUserID: from, ToUserID: to, Amount: amount("7.33")})
				if err != nil {
					assert.True(t, errs.IsInvalidError(err), "unexpected error: %v", err)
				}
			}
		}(w)
	}
	wg.Wait()

	assert.True(t, before.Equal(totalOf(t, ledger)), "total changed under concurrent transfers")
	for _, id := range ids {
		assert.False(t, balanceOf(t, ledger, id).IsNegative())
	}
}
