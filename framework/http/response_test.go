package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gohttp "github.com/km-arc/go-chainvalidator/framework/http"
	"github.com/km-arc/go-chainvalidator/framework/http/validation"
)

// ── helpers ──────────────────────────────────────────────────────────────────

func newResponse(t *testing.T) (*gohttp.Response, *httptest.ResponseRecorder) {
	t.Helper()
	rr := httptest.NewRecorder()
	return gohttp.NewResponse(rr), rr
}

func decodeJSON(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&m))
	return m
}

// ── JSON ──────────────────────────────────────────────────────────────────────

func TestResponse_JSON(t *testing.T) {
	res, rr := newResponse(t)
	res.JSON(http.StatusOK, map[string]any{"key": "val"})

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.Equal(t, "val", decodeJSON(t, rr)["key"])
}

func TestResponse_Success(t *testing.T) {
	res, rr := newResponse(t)
	res.Success(map[string]any{"id": 1})

	assert.Equal(t, http.StatusOK, rr.Code)
	data, ok := decodeJSON(t, rr)["data"].(map[string]any)
	require.True(t, ok, "expected data envelope")
	assert.Equal(t, float64(1), data["id"])
}

func TestResponse_Created(t *testing.T) {
	res, rr := newResponse(t)
	res.Created(map[string]any{"name": "Alice"})

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Contains(t, decodeJSON(t, rr), "data")
}

func TestResponse_Error(t *testing.T) {
	res, rr := newResponse(t)
	res.Error(http.StatusBadRequest, "bad input")

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "bad input", decodeJSON(t, rr)["message"])
}

func TestResponse_NotFound(t *testing.T) {
	res, rr := newResponse(t)
	res.NotFound()

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "Not found.", decodeJSON(t, rr)["message"])
}

func TestResponse_ValidationError(t *testing.T) {
	res, rr := newResponse(t)

	v := validation.New(validation.Input{"email": ""})
	v.Check("email").IsNotEmpty("Email is required.").IsEmail("Email is invalid.")
	v.Check("name")
	res.ValidationError(v.Errors())

	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)

	var body struct {
		Message string            `json:"message"`
		Errors  map[string]string `json:"errors"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	assert.Equal(t, gohttp.InvalidDataMessage, body.Message)
	assert.Equal(t, map[string]string{
		"email": "Email is required.",
		"name":  "The name field is required.",
	}, body.Errors)
}

func TestResponse_ValidationError_KeepsFieldOrder(t *testing.T) {
	res, rr := newResponse(t)

	v := validation.New(nil)
	v.LogError("zeta", "z")
	v.LogError("alpha", "a")
	res.ValidationError(v.Errors())

	assert.Contains(t, rr.Body.String(), `"errors":{"zeta":"z","alpha":"a"}`)
}

// ── Redirects ─────────────────────────────────────────────────────────────────

func TestResponse_RedirectTo(t *testing.T) {
	res, rr := newResponse(t)
	res.RedirectTo("/welcome")

	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/welcome", rr.Header().Get("Location"))
}

// ── ViewEngine ────────────────────────────────────────────────────────────────

func TestViewEngine_View(t *testing.T) {
	fsys := fstest.MapFS{
		"hello.html": {Data: []byte(`<p>{{.Name}}</p>`)},
	}
	engine := gohttp.NewViewEngine(fsys, ".html")

	rr := httptest.NewRecorder()
	engine.View(rr, http.StatusUnprocessableEntity, "hello", map[string]string{"Name": "<b>Alice</b>"})

	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	assert.Equal(t, "text/html; charset=utf-8", rr.Header().Get("Content-Type"))
	assert.Equal(t, "<p>&lt;b&gt;Alice&lt;/b&gt;</p>", rr.Body.String())
}

func TestViewEngine_MissingTemplate(t *testing.T) {
	engine := gohttp.NewViewEngine(fstest.MapFS{}, ".html")

	rr := httptest.NewRecorder()
	engine.View(rr, http.StatusOK, "nope", nil)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestViewEngine_RenderErrorKeepsStatusClean(t *testing.T) {
	fsys := fstest.MapFS{
		"broken.html": {Data: []byte(`{{.Missing.Field}}`)},
	}
	engine := gohttp.NewViewEngine(fsys, ".html")

	rr := httptest.NewRecorder()
	engine.View(rr, http.StatusOK, "broken", struct{}{})

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
