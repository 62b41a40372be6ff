// Package routehandlers provides reusable middlewares for the router.
//
// # Recovery Middleware
//
// RecoveryMiddleware recovers from panics in the middlewares registered
// after it and passes the recovered value down the chain wrapped in
// ErrPanic:
//
//	r.Use(routehandlers.RecoveryMiddleware(routehandlers.RecoveryConfig{
//	    Logger: logger,
//	}))
//
// # Access Log Middleware
//
// AccessLogMiddleware writes one zap entry per dispatch cycle with the
// path, the matched routes, the parameters and the time spent in the rest
// of the chain.
//
//	mw, err := routehandlers.AccessLogMiddleware(routehandlers.AccessLogConfig{
//	    Logger: logger,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	r.Use(mw)
//
// # Redirect and Guard Middlewares
//
// RedirectMiddleware navigates to another route and ends the cycle.
// GuardMiddleware lets a cycle continue only when its AllowFunc approves,
// and otherwise redirects or fails with ErrForbidden:
//
//	guard, err := routehandlers.GuardMiddleware(routehandlers.GuardConfig{
//	    AllowFunc: func(req *router.Request) bool { return session.LoggedIn() },
//	    Redirect:  "login",
//	    Router:    r,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	r.UseNamed("admin", "/admin/:page*", guard, renderAdmin)
//
// # Not Found and Catch Middlewares
//
// NotFoundMiddleware runs its handler when no route other than catch-all
// routes matched.
// CatchMiddleware ends the chain with the error no error handler
// recovered.
package routehandlers
