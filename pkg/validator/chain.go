package validator

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
)

// Check is one step of a field rule. Either tag (a validator tag applied
// to the field's text form) or fn is set.
type Check struct {
	tag     string
	fn      func(text string) bool
	message string
}

// Rule is the ordered list of checks for a single body field.
type Rule struct {
	Field  string
	checks []Check
}

// Field starts a rule for the named body field.
func Field(name string) *Rule {
	return &Rule{Field: name}
}

// NotEmpty fails when the field is missing, null or an empty string.
func (r *Rule) NotEmpty(message string) *Rule {
	r.checks = append(r.checks, Check{tag: "required", message: message})
	return r
}

// IsNumeric fails unless the field is a number or a numeric string.
func (r *Rule) IsNumeric(message string) *Rule {
	r.checks = append(r.checks, Check{tag: "numeric", message: message})
	return r
}

// Custom fails when fn returns false for the field's text form.
func (r *Rule) Custom(fn func(text string) bool, message string) *Rule {
	r.checks = append(r.checks, Check{fn: fn, message: message})
	return r
}

// Chain is a declarative list of field rules run against a decoded body.
type Chain []*Rule

// Run evaluates every check of every rule. Checks do not short-circuit;
// each failure contributes its message, in declaration order.
func (c Chain) Run(body map[string]any) *ValidationError {
	var messages []string
	for _, rule := range c {
		text := textOf(body[rule.Field])
		for _, check := range rule.checks {
			if !check.passes(text) {
				messages = append(messages, check.message)
			}
		}
	}
	if len(messages) == 0 {
		return nil
	}
	return NewValidationError(messages...)
}

func (ch Check) passes(text string) bool {
	if ch.fn != nil {
		return ch.fn(text)
	}
	return validate.Var(text, ch.tag) == nil
}

// textOf renders a decoded JSON value the way it is checked: null and
// missing become the empty string.
func textOf(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case json.Number:
		return val.String()
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	default:
		return fmt.Sprint(val)
	}
}

// Positive is a Custom predicate: empty fails, non-numeric text is left
// to IsNumeric, numbers must be greater than zero.
func Positive(text string) bool {
	if text == "" {
		return false
	}
	d, err := decimal.NewFromString(text)
	if err != nil {
		return true
	}
	return d.IsPositive()
}

// Whole is a Custom predicate accepting integers; non-numeric text is
// left to IsNumeric.
func Whole(text string) bool {
	d, err := decimal.NewFromString(text)
	if err != nil {
		return true
	}
	return d.IsInteger()
}

// AtMost returns a Custom predicate rejecting numbers above limit;
// non-numeric text is left to IsNumeric.
func AtMost(limit decimal.Decimal) func(text string) bool {
	return func(text string) bool {
		d, err := decimal.NewFromString(text)
		if err != nil {
			return true
		}
		return d.LessThanOrEqual(limit)
	}
}

// MaxPlaces returns a Custom predicate rejecting numbers with more than
// places significant decimal places. Trailing zeros do not count.
func MaxPlaces(places int32) func(text string) bool {
	return func(text string) bool {
		d, err := decimal.NewFromString(text)
		if err != nil {
			return true
		}
		return d.Equal(d.Truncate(places))
	}
}
