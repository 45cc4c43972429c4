package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/km-arc/go-chainvalidator/framework/http/validation"
)

const maxMemory = 32 << 20 // 32 MB

// Request wraps *http.Request with Laravel-style helpers.
type Request struct {
	raw *http.Request

	// bag is the input built by InputBag, kept so every helper and
	// Validate see the same values.
	bag validation.Input
}

// NewRequest wraps a standard *http.Request.
func NewRequest(r *http.Request) *Request {
	return &Request{raw: r}
}

// Raw returns the underlying *http.Request.
func (req *Request) Raw() *http.Request { return req.raw }

// readBody reads the whole body and puts it back so it can be read again.
func (req *Request) readBody() ([]byte, error) {
	if req.raw.Body == nil {
		return nil, ErrEmptyBody
	}
	body, err := io.ReadAll(req.raw.Body)
	_ = req.raw.Body.Close()
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	req.raw.Body = io.NopCloser(bytes.NewReader(body))
	if len(body) == 0 {
		return nil, ErrEmptyBody
	}
	return body, nil
}

// ── Validation ───────────────────────────────────────────────────────────────

// InputBag returns the request input as a validation bag.
//
//   - JSON bodies must be an object; numbers stay json.Number and null
//     values are kept, so the key still counts as present.
//   - Form and multipart bodies are merged with the query string, first
//     value per key.
//   - Anything else (GET, no body) uses the query string.
//
// The bag is built once per Request. Edits to it, such as deleting a key,
// are seen by later calls and by Validate.
func (req *Request) InputBag() (validation.Input, error) {
	if req.bag != nil {
		return req.bag, nil
	}
	in, err := req.buildBag()
	if err != nil {
		return nil, err
	}
	req.bag = in
	return req.bag, nil
}

func (req *Request) buildBag() (validation.Input, error) {
	if req.isJSONBody() {
		body, err := req.readBody()
		if err != nil {
			return nil, err
		}
		dec := json.NewDecoder(bytes.NewReader(body))
		dec.UseNumber()
		var in map[string]any
		if err := dec.Decode(&in); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
		}
		if in == nil {
			return nil, ErrInvalidJSON
		}
		return in, nil
	}

	if strings.Contains(req.ContentType(), "multipart/form-data") {
		if err := req.raw.ParseMultipartForm(maxMemory); err != nil {
			return nil, fmt.Errorf("parse multipart form: %w", err)
		}
	} else if err := req.raw.ParseForm(); err != nil {
		return nil, fmt.Errorf("parse form: %w", err)
	}

	in := make(validation.Input, len(req.raw.Form))
	for k, vals := range req.raw.Form {
		in[k] = vals
	}
	return in, nil
}

// Validate builds a validation session from the request input using
// factory (or validation.New when factory is nil).
//
//	v, err := req.Validate(factory)
//	if err != nil { res.Error(400, err.Error()); return }
//	v.Check("email").IsNotEmpty("Email is required.").IsEmail("Email is invalid.")
func (req *Request) Validate(factory *validation.Factory, opts ...validation.Option) (*validation.Session, error) {
	in, err := req.InputBag()
	if err != nil {
		return nil, err
	}
	if factory == nil {
		return validation.New(in, opts...), nil
	}
	return factory.Make(in, opts...), nil
}

// ── Input helpers ────────────────────────────────────────────────────────────

// Input returns a value from the input bag as a string, or the fallback
// when the key is absent or blank.
func (req *Request) Input(key string, fallback ...string) string {
	if req.Filled(key) {
		v, _ := req.bag.String(key)
		return v
	}
	if len(fallback) > 0 {
		return fallback[0]
	}
	return ""
}

// Query returns a query-string value.
func (req *Request) Query(key string, fallback ...string) string {
	v := req.raw.URL.Query().Get(key)
	if v == "" && len(fallback) > 0 {
		return fallback[0]
	}
	return v
}

// Has returns true if the key is present in the input, even when blank.
func (req *Request) Has(key string) bool {
	in, err := req.InputBag()
	if err != nil {
		return false
	}
	return in.Has(key)
}

// Filled returns true if the key is present and not blank.
func (req *Request) Filled(key string) bool {
	in, err := req.InputBag()
	if err != nil {
		return false
	}
	v, ok := in.String(key)
	return ok && strings.TrimSpace(v) != ""
}

// Forget removes keys from the input bag, so validation treats them as
// absent.
func (req *Request) Forget(keys ...string) {
	in, err := req.InputBag()
	if err != nil {
		return
	}
	for _, k := range keys {
		delete(in, k)
	}
}

// ContentType returns the Content-Type header value.
func (req *Request) ContentType() string {
	return req.raw.Header.Get("Content-Type")
}

func (req *Request) isJSONBody() bool {
	return strings.Contains(req.ContentType(), "application/json")
}
