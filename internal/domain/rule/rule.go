// Package rule provides pluggable business rules and an ordered validator.
//
// A rule is any value that can say whether it is broken and why. The
// validator evaluates its rules in the order given and stops at the first
// broken one, so the order decides which message a caller sees when several
// rules are violated at once.
package rule

import (
	errs "github.com/amirhossein-jamali/ledger/internal/domain/error"
)

// BusinessRule is a predicate that can veto an operation
type BusinessRule interface {
	// IsBroken reports whether the rule is violated
	IsBroken() bool
	// ErrorMessage is the client-facing reason for the violation
	ErrorMessage() string
}

// sentinelRule is implemented by rules that map onto a domain sentinel error
type sentinelRule interface {
	Sentinel() error
}

// RuleValidator evaluates an ordered list of rules
type RuleValidator struct {
	rules []BusinessRule
}

// NewRuleValidator creates a validator for the given rules, kept in order
func NewRuleValidator(rules ...BusinessRule) *RuleValidator {
	return &RuleValidator{rules: rules}
}

// Check returns a BusinessLogicError of kind Invalid for the first broken rule.
// Rules after the first broken one are not evaluated.
func (v *RuleValidator) Check() error {
	for _, r := range v.rules {
		if !r.IsBroken() {
			continue
		}

		var sentinel error
		if s, ok := r.(sentinelRule); ok {
			sentinel = s.Sentinel()
		}
		return errs.NewInvalidError(r.ErrorMessage(), sentinel)
	}
	return nil
}
