package routehandlers

import (
	"github.com/vitalvas/routux/router"
)

// RedirectConfig configures the Redirect middleware behaviour.
type RedirectConfig struct {
	// Router navigates to the target. Required.
	Router *router.Router

	// Route references the target: a *router.Route, a route name or a
	// value with a Name method.
	Route any

	// Params build the target path. When nil the parameters of the
	// current request are used, so "/old/:id" can redirect to "/new/:id".
	Params router.Params

	// Push adds a history entry instead of replacing the current one.
	Push bool
}

// RedirectMiddleware returns a middleware that navigates to the
// configured route and ends the current cycle; the navigation starts a new
// one. The target is resolved on every call, so it may be registered
// after the redirect. When it cannot be resolved or its path cannot be
// built the error is passed down the chain.
//
// It returns ErrNoRouter when cfg.Router is nil and router.ErrReference
// when cfg.Route is nil.
func RedirectMiddleware(cfg RedirectConfig) (router.Middleware, error) {
	if cfg.Router == nil {
		return router.Middleware{}, ErrNoRouter
	}
	if cfg.Route == nil {
		return router.Middleware{}, router.ErrReference
	}

	r := cfg.Router

	return router.Handler(func(req *router.Request, next router.Next) {
		params := cfg.Params
		if params == nil {
			params = req.Params
		}

		path, err := r.GetPath(cfg.Route, params)
		if err != nil {
			next(err)
			return
		}

		if cfg.Push {
			r.GoToLocation(path)
		} else {
			r.ReplaceLocation(path)
		}
	}), nil
}
