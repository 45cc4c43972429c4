// Package rule holds the predicates behind every chain rule.
//
// Each function takes the value as a string (plus fixed parameters) and
// reports whether the value satisfies the property. None of them keep state,
// so they can be used directly outside a validation session:
//
//	rule.IsEmail("alice@example.com")       // true
//	rule.IsDate("2021-02-30")               // false, no such day
//	rule.IsValidCalendarDate(2024, 2, 29)   // true, leap year
package rule

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
)

const (
	maxEmailLength = 254
	maxLocalLength = 64
)

var (
	emailPattern    = regexp.MustCompile(`^[A-Za-z0-9!#$%&'*+/=?^_{|}~-]+(?:\.[A-Za-z0-9!#$%&'*+/=?^_{|}~-]+)*@(?:[A-Za-z0-9](?:[A-Za-z0-9-]*[A-Za-z0-9])?\.)+[A-Za-z]{2,}$`)
	lettersPattern  = regexp.MustCompile(`^[A-Za-z\s]*$`)
	numericPattern  = regexp.MustCompile(`^(?:\d+(?:\.\d*)?|\.\d+)$`)
	positivePattern = regexp.MustCompile(`^[1-9][0-9]*$`)
	negativePattern = regexp.MustCompile(`^-[1-9][0-9]*$`)
)

// IsBlank reports whether s is empty or whitespace only.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// IsEmail reports whether s looks like local@domain.tld.
func IsEmail(s string) bool {
	if len(s) > maxEmailLength {
		return false
	}
	local, _, ok := strings.Cut(s, "@")
	if !ok || len(local) > maxLocalLength {
		return false
	}
	return emailPattern.MatchString(s)
}

// IsLetters reports whether s contains only ASCII letters and whitespace.
// The empty string passes; pair with a non-empty check when it must not.
func IsLetters(s string) bool {
	return lettersPattern.MatchString(s)
}

// IsNumeric reports whether s is an unsigned decimal numeral such as
// "42", "3.14", "5." or ".5". A sign is not accepted.
func IsNumeric(s string) bool {
	return numericPattern.MatchString(s)
}

// IsPositiveNumber reports whether s is a nonzero integer literal with no
// sign and no leading zero.
func IsPositiveNumber(s string) bool {
	return positivePattern.MatchString(s)
}

// IsNegativeNumber reports whether s is "-" followed by a positive number.
func IsNegativeNumber(s string) bool {
	return negativePattern.MatchString(s)
}

// Length returns the number of code points in s.
func Length(s string) int {
	return utf8.RuneCountInString(s)
}

func HasUpperCase(s string) bool {
	return strings.ContainsAny(s, "ABCDEFGHIJKLMNOPQRSTUVWXYZ")
}

func HasLowerCase(s string) bool {
	return strings.ContainsAny(s, "abcdefghijklmnopqrstuvwxyz")
}

func HasNumber(s string) bool {
	return strings.ContainsAny(s, "0123456789")
}

// IsUUID reports whether s is a UUID in its canonical hyphenated form.
func IsUUID(s string) bool {
	if len(s) != 36 {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}
