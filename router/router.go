package router

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/vitalvas/routux/location"
)

// Router owns a Location and an ordered registry of routes. Whenever the
// location changes it matches every route against the current path and
// runs the middlewares of the matched routes as one chain.
//
//	r, _ := router.New()
//	r.UseNamed("user", "/users/:id", router.Handler(func(req *router.Request, next router.Next) {
//	    fmt.Println(req.Params["id"])
//	    next(nil)
//	}))
//
// A Router is not safe for concurrent use.
type Router struct {
	id       int64
	cfg      Config
	seq      *Sequence
	logger   *zap.Logger
	metrics  *Metrics
	location location.Location
	listener *location.Listener

	running     bool
	routes      []*Route
	namedRoutes map[string]*Route
	matches     []*Route
	namedMatch  map[string]*Route
	req         *Request
}

// RouteDef describes a route registered with UseRoute. Empty fields take
// the defaults of Use.
type RouteDef struct {
	Name        string
	Pattern     string
	Middlewares []Middleware
}

// New creates a router, subscribes it to its location and normalises the
// current path.
func New(opts ...Option) (*Router, error) {
	o := options{cfg: DefaultConfig()}
	for _, opt := range opts {
		opt(&o)
	}

	if o.logger == nil {
		o.logger = zap.NewNop()
	}
	if o.seq == nil {
		o.seq = NewSequence(0)
	}

	loc := o.location
	if loc == nil {
		if err := o.cfg.Validate(); err != nil {
			return nil, err
		}

		l, err := location.New(o.cfg.Location.Adapter, o.cfg.Location.Options)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
		}
		loc = l
	}

	r := &Router{
		id:          o.seq.Next(),
		cfg:         o.cfg,
		seq:         o.seq,
		logger:      o.logger,
		metrics:     o.metrics,
		location:    loc,
		namedRoutes: make(map[string]*Route),
	}

	r.listener = location.NewListener(r.onChange)
	loc.AddChangeListener(r.listener)
	loc.EnsureSlash()

	// The first cycle starts from the corrected path.
	r.Reset()

	return r, nil
}

// MustNew is like New but panics on error.
func MustNew(opts ...Option) *Router {
	r, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return r
}

func (r *Router) onChange(c location.Change) {
	r.logger.Debug("location changed",
		zap.Int64("router_id", r.id),
		zap.String("path", c.Path),
		zap.String("action", string(c.Type)),
	)

	r.Build().Run()
}

// Close stops following the location. Routes stay registered.
func (r *Router) Close() {
	if r.listener == nil {
		return
	}
	r.location.RemoveChangeListener(r.listener)
	r.listener = nil
}

// ID returns the router identity.
func (r *Router) ID() int64 {
	return r.id
}

// Config returns the configuration the router was created with.
func (r *Router) Config() Config {
	return r.cfg
}

// Location returns the location the router follows.
func (r *Router) Location() location.Location {
	return r.location
}

// Running reports whether Run was called at least once.
func (r *Router) Running() bool {
	return r.running
}

// Request returns the context of the current build cycle.
func (r *Router) Request() *Request {
	return r.req
}

// Routes returns every registered route in registration order, including
// routes whose name was taken over by a later registration.
func (r *Router) Routes() []*Route {
	return append([]*Route(nil), r.routes...)
}

// Route returns the route registered last under name, or nil.
func (r *Router) Route(name string) *Route {
	return r.namedRoutes[name]
}

// Matches returns the routes matching the current path in registration
// order.
func (r *Router) Matches() []*Route {
	return append([]*Route(nil), r.matches...)
}

// Match returns the matched route named name, or nil.
func (r *Router) Match(name string) *Route {
	return r.namedMatch[name]
}

// BaseURL returns the absolute base URL of the location.
func (r *Router) BaseURL() string {
	return r.location.BaseURL()
}

// URL returns the current URL relative to BaseURL.
func (r *Router) URL() string {
	return r.location.URL()
}

// FullURL returns the current absolute URL.
func (r *Router) FullURL() string {
	return r.location.FullURL()
}

// Current returns the current path.
func (r *Router) Current() string {
	return r.location.Current()
}

// Use registers mw under the catch-all pattern "/:path*" and an
// automatic name.
func (r *Router) Use(mw ...Middleware) (*Route, error) {
	return r.register(r.autoName(), DefaultPattern, mw)
}

// UseRoute registers def. An empty name or pattern takes the default of
// Use.
func (r *Router) UseRoute(def RouteDef) (*Route, error) {
	name := def.Name
	if name == "" {
		name = r.autoName()
	}
	pattern := def.Pattern
	if pattern == "" {
		pattern = DefaultPattern
	}
	return r.register(name, pattern, def.Middlewares)
}

// UseNamed registers mw under name and pattern. An empty name falls back
// to the pattern.
func (r *Router) UseNamed(name, pattern string, mw ...Middleware) (*Route, error) {
	return r.register(name, pattern, mw)
}

// UsePattern registers mw under pattern and an automatic name.
func (r *Router) UsePattern(pattern string, mw ...Middleware) (*Route, error) {
	return r.register(r.autoName(), pattern, mw)
}

// autoName names a route after its registration index.
func (r *Router) autoName() string {
	return "__route_" + strconv.Itoa(len(r.routes))
}

func (r *Router) register(name, pattern string, mws []Middleware) (*Route, error) {
	route, err := newRoute(r, name, pattern, mws)
	if err != nil {
		return nil, err
	}

	r.routes = append(r.routes, route)
	r.namedRoutes[route.name] = route
	r.metrics.routeRegistered()

	r.logger.Debug("route registered",
		zap.Int64("router_id", r.id),
		zap.Int64("route_id", route.id),
		zap.String("name", route.name),
		zap.String("pattern", route.pattern),
		zap.Int("middlewares", len(route.middlewares)),
	)

	r.BuildRoute(route)

	return route, nil
}

// Reset clears the matches and starts a new cycle with a fresh Request
// built from the location.
func (r *Router) Reset() *Router {
	r.matches = nil
	r.namedMatch = make(map[string]*Route)
	r.req = &Request{
		ID:      uuid.Must(uuid.NewV7()).String(),
		Current: r.location.Current(),
		Query:   location.ParseQuery(r.location.QueryString()),
		Params:  Params{},
		Ctx:     make(map[string]any),
	}

	return r
}

// Build resets the router and matches every route in registration order.
func (r *Router) Build() *Router {
	r.Reset()

	for _, route := range r.routes {
		r.BuildRoute(route)
	}

	return r
}

// BuildRoute resets route and matches it against the current path of the
// location. On a match its captures are copied to the route and the
// request, and the route is appended to the matches.
func (r *Router) BuildRoute(route *Route) *Router {
	if route == nil || route.router != r {
		return r
	}

	params, ok := route.Reset().match(r.location.Current())
	if !ok {
		return r
	}

	for name, value := range params {
		route.params[name] = value
		r.req.Params[name] = value
	}
	route.query = r.req.Query

	r.namedMatch[route.name] = route
	r.matches = append(r.matches, route)

	return r
}

// Run chains the middlewares of every matched route and starts the chain.
// A middleware that does not call next ends the cycle.
func (r *Router) Run() *Router {
	stack := make([]frame, 0, len(r.matches))
	for _, route := range r.matches {
		for _, mw := range route.middlewares {
			stack = append(stack, frame{route: route, mw: mw})
		}
	}

	r.running = true
	r.metrics.observeDispatch(len(r.matches))

	r.logger.Debug("dispatch",
		zap.Int64("router_id", r.id),
		zap.String("request_id", r.req.ID),
		zap.String("path", r.req.Current),
		zap.Int("matches", len(r.matches)),
		zap.Int("middlewares", len(stack)),
	)

	d := &dispatch{router: r, req: r.req, stack: stack}
	d.next(nil)

	return r
}
