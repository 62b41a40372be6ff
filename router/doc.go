// Package router is a middleware router driven by a location.Location.
//
// Routes bind a pattern to an ordered list of middlewares. Whenever the
// location changes the router matches every route against the current
// path, in registration order, and runs the middlewares of all matched
// routes as a single chain:
//
//	r, err := router.New(router.WithHost(host))
//	if err != nil {
//	    return err
//	}
//
//	r.Use(router.Handler(func(req *router.Request, next router.Next) {
//	    req.Ctx["start"] = time.Now()
//	    next(nil)
//	}))
//
//	r.UseNamed("user", "/users/:id(int)", router.Handler(func(req *router.Request, next router.Next) {
//	    if req.Params["id"] == "0" {
//	        next(errNoUser)
//	        return
//	    }
//	    render(req.Params["id"])
//	}))
//
//	r.Use(router.ErrorHandler(func(err error, req *router.Request, next router.Next) {
//	    showError(err)
//	}))
//
// # Chain
//
// A middleware continues the chain by calling next. next(nil) runs the
// following normal handler and skips error handlers; next(err) skips
// normal handlers up to the following error handler. A middleware that
// does not call next ends the cycle. An error still in flight when the
// chain is exhausted is logged and counted, then dropped.
//
// All middlewares of a cycle receive the same *Request. Build starts a
// new cycle with a new Request.
//
// # URLs
//
// Routes are referenced by *Route, by name, or by any value with a Name
// method:
//
//	r.GetPath("user", router.Params{"id": "42"})    // "/users/42"
//	r.GetURL("user", router.Params{"id": "42"})     // "#/users/42"
//	r.GetFullURL("user", router.Params{"id": "42"}) // "https://example.com/app/#/users/42"
//	r.GoTo("user", router.Params{"id": "42"})
package router
