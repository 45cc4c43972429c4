// Package http provides Laravel-style request and response helpers around
// the validation package.
//
// # Request
//
// Request wraps *http.Request.
//
//	req := gohttp.NewRequest(r)
//
//	// Input bag for validation (JSON object, form + query, or query)
//	in, err := req.InputBag()
//
//	// Or straight to a session
//	v, err := req.Validate(factory)
//	v.Check("email").IsNotEmpty("Email is required.").IsEmail("Email is invalid.")
//
//	// Presence
//	req.Has("name")     // key present, even if blank
//	req.Filled("name")  // key present and not blank
//	req.Forget("age")   // validate as if "age" was never sent
//
//	// Other input
//	name := req.Input("name", "default")
//	page := req.Query("page", "1")
//
// # Response
//
// Response wraps http.ResponseWriter.
//
//	res := gohttp.NewResponse(w)
//	res.Success(data)             // 200 {"data": ...}
//	res.Created(data)             // 201 {"data": ...}
//	res.Error(400, "bad input")   // {"message": "bad input"}
//	res.NotFound()                // 404 {"message": "Not found."}
//	res.ValidationError(v.Errors())
//	// 422 {"message": "The given data was invalid.", "errors": {"field": "msg"}}
//
// # ViewEngine
//
//	engine := gohttp.NewViewEngine(os.DirFS("./views"), ".html")
//	engine.View(w, http.StatusOK, "signup", data)
package http
