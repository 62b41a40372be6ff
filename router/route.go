package router

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/vitalvas/routux/pathmatch"
)

// DefaultPattern is the pattern of routes registered without one. It
// matches every path.
const DefaultPattern = "/:path*"

// Route binds a pattern and a name to an ordered list of middlewares, and
// keeps the captures of the last match attempt.
type Route struct {
	id          int64
	router      *Router
	name        string
	pattern     string
	middlewares []Middleware

	matcher *pathmatch.Matcher
	params  Params
	query   url.Values
}

func newRoute(r *Router, name, pattern string, mws []Middleware) (*Route, error) {
	if name == "" {
		name = pattern
	}

	if len(mws) == 0 {
		return nil, fmt.Errorf("%w: route %q must have one middleware or more", ErrConfiguration, name)
	}
	for i, mw := range mws {
		if !mw.valid() {
			return nil, fmt.Errorf("%w: middleware %d of route %q has no function", ErrConfiguration, i, name)
		}
	}

	matcher, err := pathmatch.Compile(pattern, r.cfg.Regexp)
	if err != nil {
		return nil, fmt.Errorf("%w: route %q: %w", ErrConfiguration, name, err)
	}

	route := &Route{
		id:          r.seq.Next(),
		router:      r,
		name:        name,
		pattern:     pattern,
		middlewares: append([]Middleware(nil), mws...),
		matcher:     matcher,
		params:      Params{},
		query:       url.Values{},
	}

	return route, nil
}

// ID returns the identity assigned at registration.
func (r *Route) ID() int64 {
	return r.id
}

// Name returns the route name.
func (r *Route) Name() string {
	return r.name
}

// Pattern returns the route pattern.
func (r *Route) Pattern() string {
	return r.pattern
}

// Middlewares returns a copy of the route's middlewares.
func (r *Route) Middlewares() []Middleware {
	return append([]Middleware(nil), r.middlewares...)
}

// Params returns the captures of the last successful match.
func (r *Route) Params() Params {
	return r.params
}

// Query returns the query of the cycle the route last matched in. It is
// the same map as the Request's Query.
func (r *Route) Query() url.Values {
	return r.query
}

// Router returns the router the route is registered on.
func (r *Route) Router() *Router {
	return r.router
}

// Matcher returns the compiled pattern.
func (r *Route) Matcher() *pathmatch.Matcher {
	return r.matcher
}

// Reset recompiles the matcher and clears the captures and query.
func (r *Route) Reset() *Route {
	// The pattern compiled once in newRoute with the same options, and
	// compiled regexps are cached.
	r.matcher = pathmatch.MustCompile(r.pattern, r.router.cfg.Regexp)
	r.params = Params{}
	r.query = url.Values{}

	return r
}

// match tests path and returns the captures.
func (r *Route) match(path string) (Params, bool) {
	res := r.matcher.Test(path)
	if !res.Matched {
		return nil, false
	}
	return res.Params(), true
}

// GetPath builds the path of the route from params.
func (r *Route) GetPath(params Params) (string, error) {
	path, err := r.matcher.Generate(params)
	if err != nil {
		return "", fmt.Errorf("router: route %q: %w", r.name, err)
	}
	return path, nil
}

// GetURL builds the URL of the route relative to BaseURL.
func (r *Route) GetURL(params Params) (string, error) {
	path, err := r.GetPath(params)
	if err != nil {
		return "", err
	}
	return r.router.location.URLPrefix() + path, nil
}

// GetFullURL builds the absolute URL of the route.
func (r *Route) GetFullURL(params Params) (string, error) {
	u, err := r.GetURL(params)
	if err != nil {
		return "", err
	}
	return r.router.location.BaseURL() + strings.TrimPrefix(u, "/"), nil
}

// BaseURL returns the base URL of the router's location.
func (r *Route) BaseURL() string {
	return r.router.location.BaseURL()
}

func (r *Route) String() string {
	return fmt.Sprintf("%s %s", r.name, r.pattern)
}
