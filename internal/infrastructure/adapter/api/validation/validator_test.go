package validation

import (
	"errors"
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Amount  *decimal.Decimal `json:"amount" validate:"required,gt=0,money"`
	Balance *decimal.Decimal `json:"balance" validate:"required,gte=0,money"`
}

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func newValidator(t *testing.T) *validator.Validate {
	t.Helper()

	v := validator.New()
	require.NoError(t, RegisterOn(v))
	return v
}

func TestDecimalValidation(t *testing.T) {
	v := newValidator(t)

	testCases := []struct {
		name    string
		req     sampleRequest
		wantErr string
	}{
		{"Valid", sampleRequest{Amount: dec("10.50"), Balance: dec("0")}, ""},
		{"Whole numbers", sampleRequest{Amount: dec("1"), Balance: dec("100")}, ""},
		{"Zero amount", sampleRequest{Amount: dec("0"), Balance: dec("1")}, "amount must be greater than 0"},
		{"Negative amount", sampleRequest{Amount: dec("-3"), Balance: dec("1")}, "amount must be greater than 0"},
		{"Negative balance", sampleRequest{Amount: dec("1"), Balance: dec("-0.01")}, "balance must be greater than or equal to 0"},
		{"Too many decimals", sampleRequest{Amount: dec("10.505"), Balance: dec("1")}, "amount must have at most 2 decimal places"},
		{"Missing amount", sampleRequest{Balance: dec("1")}, "amount is required"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := v.Struct(tc.req)

			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tc.wantErr, Describe(err))
		})
	}
}

func TestDescribe(t *testing.T) {
	v := newValidator(t)

	t.Run("Joins field errors", func(t *testing.T) {
		err := v.Struct(sampleRequest{})

		assert.Equal(t, "amount is required; balance is required", Describe(err))
	})

	t.Run("Slice errors", func(t *testing.T) {
		first := v.Struct(sampleRequest{Balance: dec("1")})
		second := v.Struct(sampleRequest{Amount: dec("1"), Balance: dec("-1")})

		err := binding.SliceValidationError{first, second}

		assert.Equal(t, "amount is required; balance must be greater than or equal to 0", Describe(err))
	})

	t.Run("Other errors", func(t *testing.T) {
		assert.Equal(t, "Invalid request body: unexpected EOF", Describe(errors.New("unexpected EOF")))
	})
}

func TestRegister(t *testing.T) {
	require.NoError(t, Register())
	require.NoError(t, Register())
}
