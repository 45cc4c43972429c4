package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
)

// ErrMalformedRule is the panic value (wrapped) raised when a rule is
// declared with impossible arguments, e.g. a negative length or min > max.
// It signals a bug in the calling code, not bad input.
var ErrMalformedRule = errors.New("validation: malformed rule arguments")

// Errors is the error map of a session: one message per field, kept in the
// order the fields first failed.
//
// JSON output: {"email": "The email must be valid.", "age": "..."}
type Errors struct {
	order    []string
	messages map[string]string
}

func newErrors() *Errors {
	return &Errors{messages: make(map[string]string)}
}

// add stores message for field unless the field already has one.
// It reports whether the message was stored.
func (e *Errors) add(field, message string) bool {
	if _, ok := e.messages[field]; ok {
		return false
	}
	e.order = append(e.order, field)
	e.messages[field] = message
	return true
}

// Len returns the number of fields with an error.
func (e *Errors) Len() int { return len(e.order) }

// Empty returns true if no field has an error.
func (e *Errors) Empty() bool { return len(e.order) == 0 }

// Has returns true if field has an error.
func (e *Errors) Has(field string) bool {
	_, ok := e.messages[field]
	return ok
}

// Get returns the message recorded for field, or "".
func (e *Errors) Get(field string) string { return e.messages[field] }

// Fields returns the failed fields in first-error order.
func (e *Errors) Fields() []string {
	out := make([]string, len(e.order))
	copy(out, e.order)
	return out
}

// Map returns a copy of the messages keyed by field.
func (e *Errors) Map() map[string]string {
	out := make(map[string]string, len(e.messages))
	for k, v := range e.messages {
		out[k] = v
	}
	return out
}

// Error implements error.
func (e *Errors) Error() string {
	if e.Empty() {
		return "validation failed"
	}
	parts := make([]string, 0, len(e.order))
	for _, field := range e.order {
		parts = append(parts, field+": "+e.messages[field])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// MarshalJSON writes the messages as an object whose keys keep
// first-error order.
func (e *Errors) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, field := range e.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(field)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(e.messages[field])
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
