package validation

import (
	"fmt"

	"github.com/km-arc/go-chainvalidator/framework/http/validation/rule"
)

// State is the position of a Chain in its short-circuit state machine.
type State int

const (
	// StateActive: no rule has failed yet, the next failure is recorded.
	StateActive State = iota
	// StateTripped: a rule failed (or the field was missing); nothing more
	// is recorded by this chain.
	StateTripped
	// StateDormant: the field is optional and absent; nothing is ever
	// recorded by this chain.
	StateDormant
)

func (s State) String() string {
	switch s {
	case StateActive:
		return "active"
	case StateTripped:
		return "tripped"
	case StateDormant:
		return "dormant"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Chain is the rule sequence for one field within one Check call. Every
// rule method returns the chain so rules can be written one after another:
//
//	v.Check("password").
//	    IsMinimumLength(8, "Too short.").
//	    HasUpperCase("Needs an upper case letter.").
//	    HasNumber("Needs a number.")
//
// Only the first failing rule records a message.
type Chain struct {
	session *Session
	field   string
	value   string
	state   State
}

// Field returns the field the chain validates.
func (c *Chain) Field() string { return c.field }

// Value returns the value rules are evaluated against ("" when absent).
func (c *Chain) Value() string { return c.value }

// State returns the current state of the chain.
func (c *Chain) State() State { return c.state }

// apply is the single transition of the state machine.
func (c *Chain) apply(name string, ok bool, message string) *Chain {
	if c.state != StateActive || ok {
		return c
	}
	c.session.record(c.field, name, message)
	c.state = StateTripped
	return c
}

// ── Presence ─────────────────────────────────────────────────────────────────

// IsEmpty passes only for an empty or whitespace-only value.
func (c *Chain) IsEmpty(message string) *Chain {
	return c.apply("empty", rule.IsBlank(c.value), message)
}

// IsNotEmpty fails for an empty or whitespace-only value.
func (c *Chain) IsNotEmpty(message string) *Chain {
	return c.apply("not_empty", !rule.IsBlank(c.value), message)
}

// ── Format ───────────────────────────────────────────────────────────────────

// IsEmail fails unless the value looks like local@domain.tld.
func (c *Chain) IsEmail(message string) *Chain {
	return c.apply("email", rule.IsEmail(c.value), message)
}

// IsLetters fails if the value has anything besides letters and whitespace.
func (c *Chain) IsLetters(message string) *Chain {
	return c.apply("letters", rule.IsLetters(c.value), message)
}

// IsUUID fails unless the value is a hyphenated UUID.
func (c *Chain) IsUUID(message string) *Chain {
	return c.apply("uuid", rule.IsUUID(c.value), message)
}

// Satisfies fails when fn returns false for the value.
func (c *Chain) Satisfies(fn func(value string) bool, message string) *Chain {
	if fn == nil {
		panic(fmt.Errorf("%w: Satisfies on %q needs a predicate", ErrMalformedRule, c.field))
	}
	if c.state != StateActive {
		return c
	}
	return c.apply("satisfies", fn(c.value), message)
}

// ── Numbers ──────────────────────────────────────────────────────────────────

// IsNumeric fails unless the value is an unsigned decimal, e.g. "42" or "3.5".
func (c *Chain) IsNumeric(message string) *Chain {
	return c.apply("numeric", rule.IsNumeric(c.value), message)
}

// IsPositiveNumber fails unless the value is an integer >= 1 written
// without sign or leading zero.
func (c *Chain) IsPositiveNumber(message string) *Chain {
	return c.apply("positive_number", rule.IsPositiveNumber(c.value), message)
}

// IsNotPositiveNumber fails when IsPositiveNumber would pass.
func (c *Chain) IsNotPositiveNumber(message string) *Chain {
	return c.apply("not_positive_number", !rule.IsPositiveNumber(c.value), message)
}

// IsNegativeNumber fails unless the value is "-" followed by a positive
// number.
func (c *Chain) IsNegativeNumber(message string) *Chain {
	return c.apply("negative_number", rule.IsNegativeNumber(c.value), message)
}

// IsNotNegativeNumber fails when IsNegativeNumber would pass.
func (c *Chain) IsNotNegativeNumber(message string) *Chain {
	return c.apply("not_negative_number", !rule.IsNegativeNumber(c.value), message)
}

// ── Dates ────────────────────────────────────────────────────────────────────

// IsDateTime fails unless the value is "YYYY-MM-DD HH:MM:SS" on a real day.
func (c *Chain) IsDateTime(message string) *Chain {
	return c.apply("date_time", rule.IsDateTime(c.value), message)
}

// IsDate fails unless the value is "YYYY-MM-DD" on a real day.
func (c *Chain) IsDate(message string) *Chain {
	return c.apply("date", rule.IsDate(c.value), message)
}

// IsTime fails unless the value is "HH:MM:SS" on a 24 hour clock.
func (c *Chain) IsTime(message string) *Chain {
	return c.apply("time", rule.IsTime(c.value), message)
}

// ── Length ───────────────────────────────────────────────────────────────────
//
// Lengths count code points, so "日本語" has length 3.

// IsMinimumLength fails when the value is shorter than min.
func (c *Chain) IsMinimumLength(min int, message string) *Chain {
	mustNonNegative("IsMinimumLength", c.field, min)
	return c.apply("min_length", rule.Length(c.value) >= min, message)
}

// IsMaximumLength fails when the value is longer than max.
func (c *Chain) IsMaximumLength(max int, message string) *Chain {
	mustNonNegative("IsMaximumLength", c.field, max)
	return c.apply("max_length", rule.Length(c.value) <= max, message)
}

// IsLengthWithin fails when the length is outside [min, max].
// It panics if min > max.
func (c *Chain) IsLengthWithin(min, max int, message string) *Chain {
	mustNonNegative("IsLengthWithin", c.field, min)
	mustNonNegative("IsLengthWithin", c.field, max)
	if min > max {
		panic(fmt.Errorf("%w: IsLengthWithin on %q has min %d > max %d", ErrMalformedRule, c.field, min, max))
	}
	n := rule.Length(c.value)
	return c.apply("length_within", n >= min && n <= max, message)
}

// ── Character classes ────────────────────────────────────────────────────────

// HasUpperCase fails unless the value contains an A-Z letter.
func (c *Chain) HasUpperCase(message string) *Chain {
	return c.apply("upper_case", rule.HasUpperCase(c.value), message)
}

// HasLowerCase fails unless the value contains an a-z letter.
func (c *Chain) HasLowerCase(message string) *Chain {
	return c.apply("lower_case", rule.HasLowerCase(c.value), message)
}

// HasNumber fails unless the value contains a digit.
func (c *Chain) HasNumber(message string) *Chain {
	return c.apply("number", rule.HasNumber(c.value), message)
}

func mustNonNegative(method, field string, n int) {
	if n < 0 {
		panic(fmt.Errorf("%w: %s on %q has negative length %d", ErrMalformedRule, method, field, n))
	}
}
