package validation_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/km-arc/go-chainvalidator/framework/http/validation"
)

// ── New / LogError ───────────────────────────────────────────────────────────

func TestSession_StartsValid(t *testing.T) {
	v := validation.New(validation.Input{"name": "Martyn"})

	assert.True(t, v.IsValid())
	assert.True(t, v.Errors().Empty())
	assert.NoError(t, v.Err())
}

func TestSession_LogError(t *testing.T) {
	v := validation.New(nil)

	v.LogError("my_key", "I logged this")

	errs := v.Errors()
	assert.False(t, v.IsValid())
	assert.Equal(t, 1, errs.Len())
	assert.True(t, errs.Has("my_key"))
	assert.Equal(t, "I logged this", errs.Get("my_key"))
}

func TestSession_LogError_FirstMessageWins(t *testing.T) {
	v := validation.New(nil)

	v.LogError("email", "first")
	v.LogError("email", "second")

	assert.Equal(t, 1, v.Errors().Len())
	assert.Equal(t, "first", v.Errors().Get("email"))
}

// ── Has ──────────────────────────────────────────────────────────────────────

func TestSession_Has(t *testing.T) {
	v := validation.New(validation.Input{
		"name":    "",
		"age":     34,
		"email":   "martyn@example.com",
		"nothing": nil,
		"agreed":  false,
	})

	assert.True(t, v.Has("name"))
	assert.True(t, v.Has("age"))
	assert.True(t, v.Has("email"))
	assert.True(t, v.Has("nothing"))
	assert.True(t, v.Has("agreed"))
	assert.False(t, v.Has("missing_field"))
}

// ── Check presence ───────────────────────────────────────────────────────────

func TestSession_Check_PresentFieldsRecordNothing(t *testing.T) {
	v := validation.New(validation.Input{
		"name":  "",
		"age":   34,
		"email": "martyn@example.com",
	})

	for _, field := range []string{"name", "age", "email"} {
		c := v.Check(field)
		assert.Equal(t, validation.StateActive, c.State(), field)
	}

	assert.True(t, v.IsValid())
	assert.Equal(t, 0, v.Errors().Len())
}

func TestSession_Check_MissingRequiredFieldLogsOnce(t *testing.T) {
	v := validation.New(validation.Input{"name": "Martyn"})

	c := v.Check("agreement")

	assert.Equal(t, validation.StateTripped, c.State())
	assert.False(t, v.IsValid())
	assert.Equal(t, 1, v.Errors().Len())
	assert.Equal(t, "The agreement field is required.", v.Errors().Get("agreement"))

	c.IsNotEmpty("x").IsEmail("y").HasNumber("z")
	assert.Equal(t, 1, v.Errors().Len())
	assert.Equal(t, "The agreement field is required.", v.Errors().Get("agreement"))
}

func TestSession_Check_MissingOptionalFieldIsDormant(t *testing.T) {
	v := validation.New(validation.Input{"name": ""})

	v.Check("name", validation.Optional()).IsNotEmpty("Name cannot be empty")
	c := v.Check("age", validation.Optional()).IsNotEmpty("x").IsPositiveNumber("y")

	assert.Equal(t, validation.StateDormant, c.State())
	assert.True(t, v.Errors().Has("name"))
	assert.False(t, v.Errors().Has("age"))
	assert.Equal(t, 1, v.Errors().Len())
}

func TestSession_Check_OptionalDoesNotBlockLaterErrors(t *testing.T) {
	v := validation.New(nil)

	v.Check("age", validation.Optional())
	v.LogError("age", "logged by hand")

	assert.Equal(t, "logged by hand", v.Errors().Get("age"))
}

func TestSession_Check_AgainKeepsFirstError(t *testing.T) {
	v := validation.New(validation.Input{"email": "nope"})

	v.Check("email").IsEmail("first")
	c := v.Check("email")
	assert.Equal(t, validation.StateActive, c.State())

	c.IsNumeric("second")
	assert.Equal(t, validation.StateTripped, c.State())
	assert.Equal(t, "first", v.Errors().Get("email"))
	assert.Equal(t, 1, v.Errors().Len())
}

func TestSession_Check_CoercesValues(t *testing.T) {
	v := validation.New(validation.Input{
		"age":    34,
		"ratio":  2.5,
		"number": json.Number("-7"),
		"yes":    true,
		"no":     false,
		"null":   nil,
		"form":   []string{"first", "second"},
	})

	assert.Equal(t, "34", v.Check("age").Value())
	assert.Equal(t, "2.5", v.Check("ratio").Value())
	assert.Equal(t, "-7", v.Check("number").Value())
	assert.Equal(t, "1", v.Check("yes").Value())
	assert.Equal(t, "", v.Check("no").Value())
	assert.Equal(t, "", v.Check("null").Value())
	assert.Equal(t, "first", v.Check("form").Value())
	assert.True(t, v.IsValid())
}

func TestSession_Check_EmptyishValuesPassIsEmpty(t *testing.T) {
	for name, value := range map[string]any{"empty": "", "nil": nil, "false": false} {
		t.Run(name, func(t *testing.T) {
			v := validation.New(validation.Input{"name": value})
			v.Check("name").IsEmpty("Missing field")
			assert.True(t, v.IsValid())
		})
	}

	v := validation.New(validation.Input{"name": "something"})
	v.Check("name").IsEmpty("Missing field")
	assert.False(t, v.IsValid())
}

// ── Options ──────────────────────────────────────────────────────────────────

func TestSession_WithMissingMessage(t *testing.T) {
	v := validation.New(nil, validation.WithMissingMessage(func(field string) string {
		return field + " is missing"
	}))

	v.Check("email")

	assert.Equal(t, "email is missing", v.Errors().Get("email"))
}

func TestSession_WithLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	v := validation.New(validation.Input{"email": "bad"}, validation.WithLogger(logger))
	v.Check("email").IsEmail("Email is invalid.").IsNumeric("ignored")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "validation failed", rec["msg"])
	assert.Equal(t, "email", rec["field"])
	assert.Equal(t, "email", rec["rule"])
	assert.Equal(t, "Email is invalid.", rec["message"])
}

func TestSession_NilOptionsIgnored(t *testing.T) {
	v := validation.New(nil, validation.WithLogger(nil), validation.WithMissingMessage(nil))
	v.Check("name")
	assert.Equal(t, validation.MissingMessage("name"), v.Errors().Get("name"))
}

// ── Validity / Err ───────────────────────────────────────────────────────────

func TestSession_IsValidMatchesErrors(t *testing.T) {
	inputs := []validation.Input{
		{},
		{"name": "Martyn"},
		{"name": ""},
		{"email": "not-an-email", "name": "Martyn"},
	}
	for _, in := range inputs {
		v := validation.New(in)
		v.Check("name", validation.Optional()).IsNotEmpty("required")
		v.Check("email", validation.Optional()).IsEmail("bad")
		assert.Equal(t, v.Errors().Empty(), v.IsValid(), "%v", in)
	}
}

func TestSession_Err(t *testing.T) {
	v := validation.New(validation.Input{"name": ""})
	v.Check("name").IsNotEmpty("required")

	err := v.Err()
	require.Error(t, err)

	var verrs *validation.Errors
	require.True(t, errors.As(err, &verrs))
	assert.Equal(t, "required", verrs.Get("name"))
	assert.Equal(t, "validation failed: name: required", err.Error())
}

// ── Factory ──────────────────────────────────────────────────────────────────

func TestFactory_MakeAppliesOptions(t *testing.T) {
	f := validation.NewFactory(validation.WithMissingMessage(func(field string) string {
		return "need " + field
	}))

	a := f.Make(nil)
	b := f.Make(validation.Input{"name": "x"})
	a.Check("name")
	b.Check("name")

	assert.Equal(t, "need name", a.Errors().Get("name"))
	assert.True(t, b.IsValid())
}

func TestFactory_MakeOptionsOverrideFactory(t *testing.T) {
	f := validation.NewFactory(validation.WithMissingMessage(func(string) string { return "factory" }))

	v := f.Make(nil, validation.WithMissingMessage(func(string) string { return "call" }))
	v.Check("name")

	assert.Equal(t, "call", v.Errors().Get("name"))
}
