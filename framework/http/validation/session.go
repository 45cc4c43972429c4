package validation

import (
	"fmt"
	"log/slog"
)

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger that receives a debug record for every error
// the session stores. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithMissingMessage overrides the message logged when a required field is
// absent from the input. Nil is ignored.
func WithMissingMessage(fn func(field string) string) Option {
	return func(s *Session) {
		if fn != nil {
			s.missing = fn
		}
	}
}

// MissingMessage returns the default missing-field message for field.
func MissingMessage(field string) string {
	return fmt.Sprintf("The %s field is required.", field)
}

// Session scopes one validation pass over an input bag and owns the
// errors found during it. Create one per attempt; it is not safe for
// concurrent use.
type Session struct {
	input   Input
	errors  *Errors
	logger  *slog.Logger
	missing func(field string) string
}

// New creates a session over input.
//
//	v := validation.New(validation.Input{"email": "alice@example.com"})
//	v.Check("email").IsNotEmpty("Email is required.").IsEmail("Email is invalid.")
//	if !v.IsValid() { ... v.Errors() ... }
func New(input Input, opts ...Option) *Session {
	s := &Session{
		input:   input,
		errors:  newErrors(),
		logger:  slog.New(slog.DiscardHandler),
		missing: MissingMessage,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Has reports whether field is present in the input, whatever its value.
func (s *Session) Has(field string) bool {
	return s.input.Has(field)
}

// Check starts a rule chain for field.
//
// A present field gives an active chain. An absent field logs the missing
// message immediately and gives a tripped chain, unless Optional is passed,
// in which case the chain is dormant and never records anything.
//
// Checking a field again starts a fresh chain but keeps any error already
// recorded for it.
func (s *Session) Check(field string, opts ...CheckOption) *Chain {
	var o checkOptions
	for _, opt := range opts {
		opt(&o)
	}

	value, ok := s.input.String(field)
	switch {
	case ok:
		return &Chain{session: s, field: field, value: value, state: StateActive}
	case o.optional:
		return &Chain{session: s, field: field, state: StateDormant}
	default:
		s.record(field, "required", s.missing(field))
		return &Chain{session: s, field: field, state: StateTripped}
	}
}

// LogError records message for field unless the field already has an
// error. The first message for a field wins for the whole session.
func (s *Session) LogError(field, message string) {
	s.record(field, "", message)
}

func (s *Session) record(field, rule, message string) {
	if !s.errors.add(field, message) {
		return
	}
	s.logger.Debug("validation failed",
		slog.String("field", field),
		slog.String("rule", rule),
		slog.String("message", message),
	)
}

// IsValid returns true if no error has been recorded.
func (s *Session) IsValid() bool { return s.errors.Empty() }

// Errors returns the recorded errors.
func (s *Session) Errors() *Errors { return s.errors }

// Err returns nil when the session is valid and the *Errors otherwise.
func (s *Session) Err() error {
	if s.IsValid() {
		return nil
	}
	return s.errors
}

// CheckOption configures a single Check call.
type CheckOption func(*checkOptions)

type checkOptions struct {
	optional bool
}

// Optional makes the absence of the field acceptable.
func Optional() CheckOption {
	return func(o *checkOptions) { o.optional = true }
}

// Factory makes sessions that share the same options, the way Laravel's
// Validator::make does from the container.
type Factory struct {
	opts []Option
}

// NewFactory creates a Factory. The options are applied to every session.
func NewFactory(opts ...Option) *Factory {
	return &Factory{opts: append([]Option(nil), opts...)}
}

// Make creates a session over input.
func (f *Factory) Make(input Input, opts ...Option) *Session {
	all := make([]Option, 0, len(f.opts)+len(opts))
	all = append(all, f.opts...)
	all = append(all, opts...)
	return New(input, all...)
}
