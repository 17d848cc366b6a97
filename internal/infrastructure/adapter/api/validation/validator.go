// Package validation wires ledger-specific rules into gin's request validator.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/amirhossein-jamali/ledger/internal/domain/entity"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// MoneyTag limits an amount to the ledger's decimal places
const MoneyTag = "money"

var (
	registerOnce sync.Once
	registerErr  error
)

// Register installs the ledger validations on gin's default validator.
// Safe to call more than once.
func Register() error {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			registerErr = errors.New("gin validator engine is not go-playground/validator")
			return
		}
		registerErr = RegisterOn(v)
	})
	return registerErr
}

// RegisterOn installs the ledger validations on v:
// decimal fields are compared as numbers, the money tag is available,
// and errors report JSON field names.
func RegisterOn(v *validator.Validate) error {
	v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})
	v.RegisterTagNameFunc(jsonFieldName)

	if err := v.RegisterValidation(MoneyTag, validateMoney); err != nil {
		return fmt.Errorf("register %s validation: %w", MoneyTag, err)
	}
	return nil
}

// decimalValue lets numeric tags such as gt and gte apply to decimal.Decimal
func decimalValue(field reflect.Value) any {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		f, _ := d.Float64()
		return f
	}
	return nil
}

func jsonFieldName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	return name
}

func validateMoney(fl validator.FieldLevel) bool {
	field := fl.Field()

	switch field.Kind() {
	case reflect.Float32, reflect.Float64:
		return entity.HasValidPrecision(decimal.NewFromFloat(field.Float()))
	case reflect.String:
		d, err := decimal.NewFromString(field.String())
		return err == nil && entity.HasValidPrecision(d)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	default:
		return false
	}
}

// Describe renders a binding error as a single client-facing sentence
func Describe(err error) string {
	var sliceErrs binding.SliceValidationError
	if errors.As(err, &sliceErrs) {
		parts := make([]string, 0, len(sliceErrs))
		for _, e := range sliceErrs {
			if e != nil {
				parts = append(parts, Describe(e))
			}
		}
		return strings.Join(parts, "; ")
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		parts := make([]string, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			parts = append(parts, describeField(fe))
		}
		return strings.Join(parts, "; ")
	}

	return "Invalid request body: " + err.Error()
}

func describeField(fe validator.FieldError) string {
	field := fe.Field()

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, fe.Param())
	case MoneyTag:
		return fmt.Sprintf("%s must have at most %d decimal places", field, entity.MaxDecimalPlaces)
	default:
		return fmt.Sprintf("%s failed on %s", field, fe.Tag())
	}
}
