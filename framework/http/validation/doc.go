// Package validation provides chained, per-field input validation.
//
// # Overview
//
// A Session wraps one input bag (a form submission, a decoded JSON body).
// Check starts a chain of rules for one field; the first rule that fails
// records its message and the rest of the chain stops recording. Each field
// ends up with at most one message.
//
// # Basic Usage
//
//	v := validation.New(validation.Input{
//	    "name":     "Alice",
//	    "email":    "alice@example.com",
//	    "password": "s3cretPass",
//	})
//
//	v.Check("name").IsNotEmpty("Name is required.").IsLetters("Letters only.")
//	v.Check("email").IsNotEmpty("Email is required.").IsEmail("Email is invalid.")
//	v.Check("password").
//	    IsMinimumLength(8, "Password is too short.").
//	    HasUpperCase("Password needs an upper case letter.").
//	    HasNumber("Password needs a number.")
//	v.Check("birthday", validation.Optional()).IsDate("Birthday is not a date.")
//
//	if !v.IsValid() {
//	    // v.Errors() keeps one message per field in first-error order.
//	    // JSON: {"password": "Password is too short."}
//	}
//
// # Presence
//
//   - present field (any value, even "" or nil): chain starts active
//   - absent field: the missing message is recorded by Check itself
//   - absent field with Optional(): chain is dormant and records nothing
//
// # Available Rules
//
// Presence:
//   - IsEmpty / IsNotEmpty: empty or whitespace-only
//
// Format:
//   - IsEmail: local@domain.tld
//   - IsLetters: letters and whitespace
//   - IsUUID: canonical hyphenated UUID
//   - Satisfies: any func(string) bool
//
// Numeric:
//   - IsNumeric: "42", "3.14"
//   - IsPositiveNumber / IsNotPositiveNumber: "1", "250"
//   - IsNegativeNumber / IsNotNegativeNumber: "-1", "-250"
//
// Dates:
//   - IsDate: YYYY-MM-DD, real calendar day
//   - IsDateTime: YYYY-MM-DD HH:MM:SS, real calendar day
//   - IsTime: HH:MM:SS
//
// Length (code points):
//   - IsMinimumLength(min), IsMaximumLength(max), IsLengthWithin(min, max)
//
// Character classes:
//   - HasUpperCase, HasLowerCase, HasNumber
//
// Rules declared with impossible arguments (negative lengths, min > max)
// panic with an error wrapping ErrMalformedRule.
package validation
