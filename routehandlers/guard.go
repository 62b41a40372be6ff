package routehandlers

import (
	"errors"

	"github.com/vitalvas/routux/router"
)

// ErrForbidden is passed down the chain when a guard denies access and no
// redirect is configured.
var ErrForbidden = errors.New("guard: access denied")

// ErrNoAllowFunc is returned when GuardConfig has no AllowFunc.
var ErrNoAllowFunc = errors.New("guard: AllowFunc is required")

// GuardConfig configures the Guard middleware behaviour.
type GuardConfig struct {
	// AllowFunc decides whether the cycle may continue. Required.
	AllowFunc func(req *router.Request) bool

	// Redirect, when set, is the route denied cycles are redirected to,
	// e.g. a login page. Router must be set with it.
	Redirect any

	// Router navigates to Redirect.
	Router *router.Router
}

// GuardMiddleware returns a middleware that lets a cycle continue only
// when AllowFunc approves it. A denied cycle is redirected to the
// configured route, or continues with ErrForbidden.
//
// It returns ErrNoAllowFunc when AllowFunc is nil and ErrNoRouter when a
// redirect is configured without a router.
func GuardMiddleware(cfg GuardConfig) (router.Middleware, error) {
	if cfg.AllowFunc == nil {
		return router.Middleware{}, ErrNoAllowFunc
	}

	allow := cfg.AllowFunc

	if cfg.Redirect == nil {
		return router.Handler(func(req *router.Request, next router.Next) {
			if !allow(req) {
				next(ErrForbidden)
				return
			}
			next(nil)
		}), nil
	}

	redirect, err := RedirectMiddleware(RedirectConfig{
		Router: cfg.Router,
		Route:  cfg.Redirect,
		Params: router.Params{},
	})
	if err != nil {
		return router.Middleware{}, err
	}

	return router.Handler(func(req *router.Request, next router.Next) {
		if !allow(req) {
			redirect.Call(nil, req, next)
			return
		}
		next(nil)
	}), nil
}
