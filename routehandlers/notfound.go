package routehandlers

import (
	"github.com/vitalvas/routux/router"
)

// NotFoundMiddleware returns a middleware that calls fn when no route
// other than catch-all routes matched, and continues the chain otherwise.
// A catch-all route is one registered under router.DefaultPattern, as Use
// does. Register it last:
//
//	nf := routehandlers.NotFoundMiddleware(renderNotFound)
//	r.Use(nf)
func NotFoundMiddleware(fn router.HandlerFunc) router.Middleware {
	return router.Handler(func(req *router.Request, next router.Next) {
		route := req.Route()
		if route == nil || fn == nil {
			next(nil)
			return
		}

		for _, m := range route.Router().Matches() {
			if m != route && m.Pattern() != router.DefaultPattern {
				next(nil)
				return
			}
		}

		fn(req, next)
	})
}

// CatchMiddleware returns an error handler that passes the error in
// flight to fn and ends the cycle. Registered last, it receives the
// errors no other error handler recovered.
func CatchMiddleware(fn func(err error, req *router.Request)) router.Middleware {
	return router.ErrorHandler(func(err error, req *router.Request, _ router.Next) {
		if fn != nil {
			fn(err, req)
		}
	})
}
