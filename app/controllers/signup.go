package controllers

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/km-arc/go-chainvalidator/framework/app"
	gohttp "github.com/km-arc/go-chainvalidator/framework/http"
	"github.com/km-arc/go-chainvalidator/framework/http/validation"
	"github.com/km-arc/go-chainvalidator/framework/routing"
)

// SignupController accepts new accounts as JSON on /api/v1/signup and as an
// HTML form on /signup. Nothing is persisted; a valid submission is echoed
// back with a generated id.
type SignupController struct {
	app.Controller
	validator *validation.Factory
	views     *gohttp.ViewEngine
	log       *slog.Logger
}

func NewSignupController(validator *validation.Factory, views *gohttp.ViewEngine, log *slog.Logger) *SignupController {
	return &SignupController{validator: validator, views: views, log: log}
}

// Routes mounts the controller on r.
func (c *SignupController) Routes(r *routing.Router) {
	r.Get("/signup", c.Form)
	r.Post("/signup", c.Submit)
	r.Prefix("/api/v1", func(api *routing.Router) {
		api.Post("/signup", c.Store)
	})
}

// optionalFields may be left out entirely.
var optionalFields = []string{"birthday", "age"}

// rules declares the sign-up checks, one chain per field.
func rules(v *validation.Session) {
	v.Check("name").
		IsNotEmpty("Name is required.").
		IsLetters("Name may only contain letters and spaces.").
		IsMaximumLength(64, "Name may not be longer than 64 characters.")

	v.Check("email").
		IsNotEmpty("Email is required.").
		IsEmail("Email must be a valid email address.")

	v.Check("password").
		IsMinimumLength(8, "Password must be at least 8 characters.").
		HasUpperCase("Password must contain an uppercase letter.").
		HasLowerCase("Password must contain a lowercase letter.").
		HasNumber("Password must contain a number.")

	v.Check("birthday", validation.Optional()).
		IsDate("Birthday must be a date in YYYY-MM-DD format.")

	v.Check("age", validation.Optional()).
		IsPositiveNumber("Age must be a positive whole number.")
}

// Store handles POST /api/v1/signup.
//
//	201 {"data": {"id": "...", "name": "...", "email": "..."}}
//	422 {"message": "The given data was invalid.", "errors": {"email": "..."}}
func (c *SignupController) Store(w http.ResponseWriter, r *http.Request) {
	req, res := c.Request(r), c.Response(w)

	v, err := req.Validate(c.validator)
	if err != nil {
		res.Error(http.StatusBadRequest, err.Error())
		return
	}
	rules(v)
	if !v.IsValid() {
		c.log.InfoContext(r.Context(), "signup rejected",
			slog.String("request_id", routing.GetRequestID(r.Context())),
			slog.Any("fields", v.Errors().Fields()),
		)
		res.ValidationError(v.Errors())
		return
	}

	res.Created(c.accepted(req))
}

// Form handles GET /signup.
func (c *SignupController) Form(w http.ResponseWriter, r *http.Request) {
	c.views.View(w, http.StatusOK, "signup", formData{
		Created: c.Request(r).Query("created") != "",
	})
}

// Submit handles POST /signup from the HTML form. Blank optional inputs
// count as not submitted, since browsers always send every field.
func (c *SignupController) Submit(w http.ResponseWriter, r *http.Request) {
	req, res := c.Request(r), c.Response(w)

	for _, field := range optionalFields {
		if !req.Filled(field) {
			req.Forget(field)
		}
	}

	v, err := req.Validate(c.validator)
	if err != nil {
		res.Error(http.StatusBadRequest, err.Error())
		return
	}
	rules(v)
	if !v.IsValid() {
		c.views.View(w, http.StatusUnprocessableEntity, "signup", formData{
			Errors: v.Errors().Map(),
			Old:    old(req, "name", "email", "birthday", "age"),
		})
		return
	}

	c.accepted(req)
	res.RedirectTo("/signup?created=1")
}

func (c *SignupController) accepted(req *gohttp.Request) map[string]any {
	ctx := req.Raw().Context()
	id := uuid.NewString()

	c.log.InfoContext(ctx, "signup accepted",
		slog.String("request_id", routing.GetRequestID(ctx)),
		slog.String("id", id),
	)
	return map[string]any{"id": id, "name": req.Input("name"), "email": req.Input("email")}
}

type formData struct {
	Created bool
	Errors  map[string]string
	Old     map[string]string
}

// old returns the submitted values of fields for re-filling the form.
func old(req *gohttp.Request, fields ...string) map[string]string {
	out := make(map[string]string, len(fields))
	for _, field := range fields {
		out[field] = req.Input(field)
	}
	return out
}
