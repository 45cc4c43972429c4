package http

import (
	"bytes"
	"encoding/json"
	"html/template"
	"io/fs"
	"net/http"
	"path"

	"github.com/km-arc/go-chainvalidator/framework/http/validation"
)

// InvalidDataMessage is the top-level message of a 422 response.
const InvalidDataMessage = "The given data was invalid."

// ── Response ─────────────────────────────────────────────────────────────────

// Response wraps http.ResponseWriter with Laravel-style helpers.
type Response struct {
	w http.ResponseWriter
}

// NewResponse wraps a ResponseWriter.
func NewResponse(w http.ResponseWriter) *Response {
	return &Response{w: w}
}

// Raw returns the underlying ResponseWriter.
func (res *Response) Raw() http.ResponseWriter { return res.w }

// ── JSON responses ────────────────────────────────────────────────────────────

// JSON sends a JSON response.
//
//	res.JSON(http.StatusOK, map[string]any{"message": "ok"})
func (res *Response) JSON(status int, data any) {
	res.w.Header().Set("Content-Type", "application/json")
	res.w.WriteHeader(status)
	_ = json.NewEncoder(res.w).Encode(data)
}

// Success sends 200 JSON: {"data": v}
func (res *Response) Success(v any) {
	res.JSON(http.StatusOK, envelope{"data": v})
}

// Created sends 201 JSON: {"data": v}
func (res *Response) Created(v any) {
	res.JSON(http.StatusCreated, envelope{"data": v})
}

// Error sends a JSON error response.
//
//	res.Error(http.StatusBadRequest, "request body must be a JSON object")
func (res *Response) Error(status int, message string) {
	res.JSON(status, envelope{"message": message})
}

// NotFound sends 404.
func (res *Response) NotFound(message ...string) {
	res.JSON(http.StatusNotFound, envelope{"message": first(message, "Not found.")})
}

// ValidationError sends 422 with one message per field, in the order the
// fields failed.
//
//	{"message": "The given data was invalid.", "errors": {"email": "Email is invalid."}}
func (res *Response) ValidationError(errors *validation.Errors) {
	res.JSON(http.StatusUnprocessableEntity, envelope{
		"message": InvalidDataMessage,
		"errors":  errors,
	})
}

// ── Redirects ────────────────────────────────────────────────────────────────

// RedirectTo performs a 303 redirect, the usual answer to a successful
// form POST.
func (res *Response) RedirectTo(url string) {
	res.w.Header().Set("Location", url)
	res.w.WriteHeader(http.StatusSeeOther)
}

// ── View / Templates ─────────────────────────────────────────────────────────

// ViewEngine renders html/template files from a file system.
type ViewEngine struct {
	fsys fs.FS
	ext  string
}

// NewViewEngine creates a ViewEngine reading "<name><ext>" files from fsys.
//
//	engine := gohttp.NewViewEngine(os.DirFS("./views"), ".html")
func NewViewEngine(fsys fs.FS, ext string) *ViewEngine {
	return &ViewEngine{fsys: fsys, ext: ext}
}

// View renders a template with data and the given status code.
//
//	engine.View(res.Raw(), http.StatusOK, "signup", map[string]any{"title": "Sign up"})
func (ve *ViewEngine) View(w http.ResponseWriter, status int, name string, data any) {
	tmpl, err := template.ParseFS(ve.fsys, path.Clean(name)+ve.ext)
	if err != nil {
		http.Error(w, "Template not found: "+name, http.StatusInternalServerError)
		return
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		http.Error(w, "Template render error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// ── Helpers ──────────────────────────────────────────────────────────────────

type envelope map[string]any

func first(ss []string, fallback string) string {
	if len(ss) > 0 && ss[0] != "" {
		return ss[0]
	}
	return fallback
}
