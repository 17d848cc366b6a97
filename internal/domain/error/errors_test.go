package error

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestBaseErrorTypes(t *testing.T) {
	if ErrInsufficientBalance.Error() != "insufficient balance" {
		t.Errorf("ErrInsufficientBalance has unexpected message: %s", ErrInsufficientBalance.Error())
	}
	if ErrUserNotFound.Error() != "user not found" {
		t.Errorf("ErrUserNotFound has unexpected message: %s", ErrUserNotFound.Error())
	}
}

func TestErrorCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"InsufficientBalance", ErrInsufficientBalance, 4001},
		{"InvalidAmount", ErrInvalidAmount, 4002},
		{"NegativeAmount", ErrNegativeAmount, 4002},
		{"InvalidUserID", ErrInvalidUserID, 4003},
		{"SelfTransfer", ErrSelfTransfer, 4004},
		{"DuplicateEmail", ErrDuplicateEmail, 4005},
		{"InvalidRequest", ErrInvalidRequest, 4006},
		{"UserNotFound", ErrUserNotFound, 4040},
		{"UnknownError", errors.New("unknown error"), 5000},
		{"WrappedError", fmt.Errorf("wrapped: %w", ErrInvalidUserID), 4003},
		{"BusinessLogicError", NewInvalidError(MsgSelfTransfer, ErrSelfTransfer), 4004},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			code := ErrorCode(tc.err)
			if code != tc.expected {
				t.Errorf("ErrorCode(%v) = %d, want %d", tc.err, code, tc.expected)
			}
		})
	}
}

func TestBusinessLogicError(t *testing.T) {
	t.Run("Invalid kind", func(t *testing.T) {
		err := NewInvalidError(MsgInsufficientBalance, ErrInsufficientBalance)

		if err.Error() != MsgInsufficientBalance {
			t.Errorf("Error() = %q, want %q", err.Error(), MsgInsufficientBalance)
		}
		if !errors.Is(err, ErrInsufficientBalance) {
			t.Error("expected errors.Is to match ErrInsufficientBalance")
		}
		if !IsInvalidError(err) {
			t.Error("expected IsInvalidError to be true")
		}
		if IsNotFoundError(err) {
			t.Error("expected IsNotFoundError to be false")
		}

		ble, ok := AsBusinessLogicError(err)
		if !ok {
			t.Fatal("expected AsBusinessLogicError to succeed")
		}
		if ble.StatusCode() != http.StatusBadRequest {
			t.Errorf("StatusCode() = %d, want %d", ble.StatusCode(), http.StatusBadRequest)
		}
	})

	t.Run("NotFound kind", func(t *testing.T) {
		err := NewNotFoundError(MsgUsersNotFound, ErrUserNotFound)

		if !IsNotFoundError(err) {
			t.Error("expected IsNotFoundError to be true")
		}
		if IsInvalidError(err) {
			t.Error("expected IsInvalidError to be false")
		}

		ble, _ := AsBusinessLogicError(err)
		if ble.StatusCode() != http.StatusNotFound {
			t.Errorf("StatusCode() = %d, want %d", ble.StatusCode(), http.StatusNotFound)
		}
	})

	t.Run("Wrapped business error is still detected", func(t *testing.T) {
		err := fmt.Errorf("transfer: %w", NewNotFoundError(MsgUsersNotFound, ErrUserNotFound))

		ble, ok := AsBusinessLogicError(err)
		if !ok {
			t.Fatal("expected AsBusinessLogicError to unwrap")
		}
		if ble.Message != MsgUsersNotFound {
			t.Errorf("Message = %q, want %q", ble.Message, MsgUsersNotFound)
		}
	})

	t.Run("LogFields", func(t *testing.T) {
		ble := &BusinessLogicError{Message: MsgSelfTransfer, Kind: KindInvalid, Err: ErrSelfTransfer}
		fields := ble.LogFields()

		if fields["kind"] != "invalid" {
			t.Errorf("kind = %v, want invalid", fields["kind"])
		}
		if fields["error_code"] != CodeSelfTransfer {
			t.Errorf("error_code = %v, want %d", fields["error_code"], CodeSelfTransfer)
		}
		if fields["error"] != "self transfer" {
			t.Errorf("error = %v, want self transfer", fields["error"])
		}
	})
}

func TestBalanceError(t *testing.T) {
	balanceErr := &BalanceError{
		BalanceID:      7,
		Delta:          "-100.50",
		CurrentBalance: "50.25",
		Err:            ErrNegativeBalance,
	}

	expectedErrMsg := "balance operation failed for record 7 (current balance: 50.25, delta: -100.50): balance cannot be negative"
	if balanceErr.Error() != expectedErrMsg {
		t.Errorf("BalanceError.Error() = %s, want %s", balanceErr.Error(), expectedErrMsg)
	}

	if !errors.Is(balanceErr, ErrNegativeBalance) {
		t.Error("BalanceError should unwrap to ErrNegativeBalance")
	}

	fields := balanceErr.LogFields()
	if fields["balance_id"] != uint64(7) {
		t.Errorf("balance_id = %v, want 7", fields["balance_id"])
	}
	if fields["error_type"] != "balance_error" {
		t.Errorf("error_type = %v, want balance_error", fields["error_type"])
	}
}
