package router

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitalvas/routux/location"
	"github.com/vitalvas/routux/pathmatch"
)

func newMemoryRouter(t *testing.T, initial string, opts ...Option) (*Router, *location.MemoryAdapter) {
	t.Helper()

	loc := location.NewMemoryAdapter(location.Options{Initial: initial})
	r, err := New(append([]Option{WithLocation(loc)}, opts...)...)
	require.NoError(t, err)

	return r, loc
}

func noop() Middleware {
	return Handler(func(_ *Request, next Next) { next(nil) })
}

func counter(calls *int) Middleware {
	return Handler(func(_ *Request, next Next) {
		*calls++
		next(nil)
	})
}

func routeNames(routes []*Route) []string {
	names := make([]string, len(routes))
	for i, r := range routes {
		names[i] = r.Name()
	}
	return names
}

func TestNew(t *testing.T) {
	t.Run("defaults to the hash adapter", func(t *testing.T) {
		r, err := New()
		require.NoError(t, err)

		assert.IsType(t, &location.HashAdapter{}, r.Location())
		assert.Equal(t, "/", r.Current())
		assert.Equal(t, "http://localhost/", r.BaseURL())
		assert.Equal(t, "#/", r.URL())
		assert.Equal(t, "http://localhost/#/", r.FullURL())
		assert.Equal(t, DefaultConfig(), r.Config())
		assert.False(t, r.Running())
		assert.Zero(t, r.ID())
	})

	t.Run("with host", func(t *testing.T) {
		host, err := location.NewMemoryHost("http://localhost/app.html#/home")
		require.NoError(t, err)

		r, err := New(WithHost(host))
		require.NoError(t, err)
		assert.Equal(t, "/home", r.Current())
		assert.Equal(t, "/home", r.Request().Current)
	})

	t.Run("memory adapter from config", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Location.Adapter = "memory"
		cfg.Location.Options.Initial = "/start"

		r, err := New(WithConfig(cfg))
		require.NoError(t, err)
		assert.IsType(t, &location.MemoryAdapter{}, r.Location())
		assert.Equal(t, "/start", r.Current())
	})

	t.Run("unknown adapter", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Location.Adapter = "history"

		_, err := New(WithConfig(cfg))
		assert.ErrorIs(t, err, ErrConfiguration)
		assert.ErrorIs(t, err, location.ErrUnknownAdapter)
	})

	t.Run("empty adapter", func(t *testing.T) {
		_, err := New(WithConfig(Config{}))
		assert.ErrorIs(t, err, ErrConfiguration)
	})

	t.Run("invalid base url", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Location.Options.BaseURL = "not a url"

		_, err := New(WithConfig(cfg))
		assert.ErrorIs(t, err, ErrConfiguration)
		assert.ErrorIs(t, err, location.ErrInvalidURL)
	})

	t.Run("corrects the initial path", func(t *testing.T) {
		r, loc := newMemoryRouter(t, "home")
		assert.Equal(t, "/home", r.Current())
		assert.Equal(t, []string{"/home"}, loc.Entries())
	})

	t.Run("MustNew panics on error", func(t *testing.T) {
		assert.Panics(t, func() { MustNew(WithConfig(Config{})) })
	})
}

func TestRouterInitialPath(t *testing.T) {
	t.Run("memory location without leading slash", func(t *testing.T) {
		r, loc := newMemoryRouter(t, "users/1")
		assert.Equal(t, "/users/1", r.Request().Current)
		assert.Equal(t, []string{"/users/1"}, loc.Entries())

		var calls int
		_, err := r.UseNamed("user", "/users/:id", counter(&calls))
		require.NoError(t, err)
		assert.Equal(t, []string{"user"}, routeNames(r.Matches()))
		assert.Equal(t, "1", r.Request().Params["id"])

		r.Run()
		assert.Equal(t, 1, calls)
	})

	t.Run("empty hash with strict matching", func(t *testing.T) {
		r, err := New(WithRegexp(pathmatch.Options{Strict: true, End: true}))
		require.NoError(t, err)
		assert.Equal(t, "/", r.Request().Current)

		var calls int
		_, err = r.UseNamed("home", "/", counter(&calls))
		require.NoError(t, err)
		assert.Equal(t, []string{"home"}, routeNames(r.Matches()))

		r.Run()
		assert.Equal(t, 1, calls)
	})

	t.Run("hash without leading slash", func(t *testing.T) {
		host, err := location.NewMemoryHost("http://localhost/app.html#users/1")
		require.NoError(t, err)

		r, err := New(WithHost(host))
		require.NoError(t, err)
		assert.Equal(t, "/users/1", r.Request().Current)

		var ids []string
		_, err = r.UseNamed("user", "/users/:id", Handler(func(req *Request, next Next) {
			ids = append(ids, req.Params["id"])
			next(nil)
		}))
		require.NoError(t, err)
		assert.Equal(t, []string{"user"}, routeNames(r.Matches()))

		host.Flush()
		assert.Equal(t, []string{"1"}, ids)
	})
}

func TestRouterRegistration(t *testing.T) {
	t.Run("automatic names follow the registration index", func(t *testing.T) {
		r, _ := newMemoryRouter(t, "/")

		first, err := r.Use(noop())
		require.NoError(t, err)
		second, err := r.Use(noop())
		require.NoError(t, err)

		assert.Equal(t, "__route_0", first.Name())
		assert.Equal(t, "__route_1", second.Name())
		assert.Equal(t, DefaultPattern, first.Pattern())
	})

	t.Run("registration shapes", func(t *testing.T) {
		r, _ := newMemoryRouter(t, "/")

		a, err := r.Use(noop(), noop())
		require.NoError(t, err)
		b, err := r.UseRoute(RouteDef{Middlewares: []Middleware{noop()}})
		require.NoError(t, err)
		c, err := r.UseRoute(RouteDef{Name: "c", Pattern: "/c", Middlewares: []Middleware{noop()}})
		require.NoError(t, err)
		d, err := r.UseNamed("home", "/", noop())
		require.NoError(t, err)
		e, err := r.UsePattern("/about", noop())
		require.NoError(t, err)
		f, err := r.UseNamed("", "/contact", noop())
		require.NoError(t, err)

		assert.Equal(t, []string{"__route_0", "__route_1", "c", "home", "__route_4", "/contact"},
			routeNames([]*Route{a, b, c, d, e, f}))
		assert.Equal(t, []string{DefaultPattern, DefaultPattern, "/c", "/", "/about", "/contact"},
			[]string{a.Pattern(), b.Pattern(), c.Pattern(), d.Pattern(), e.Pattern(), f.Pattern()})
		assert.Len(t, a.Middlewares(), 2)
		assert.Same(t, d, r.Route("home"))
		assert.Same(t, r, d.Router())
	})

	t.Run("configuration errors", func(t *testing.T) {
		tests := []struct {
			name     string
			register func(r *Router) (*Route, error)
			is       []error
		}{
			{
				name:     "no middleware",
				register: func(r *Router) (*Route, error) { return r.Use() },
				is:       []error{ErrConfiguration},
			},
			{
				name:     "route def without middleware",
				register: func(r *Router) (*Route, error) { return r.UseRoute(RouteDef{Name: "x"}) },
				is:       []error{ErrConfiguration},
			},
			{
				name:     "named without middleware",
				register: func(r *Router) (*Route, error) { return r.UseNamed("x", "/x") },
				is:       []error{ErrConfiguration},
			},
			{
				name:     "nil handler",
				register: func(r *Router) (*Route, error) { return r.Use(Handler(nil)) },
				is:       []error{ErrConfiguration},
			},
			{
				name:     "nil error handler",
				register: func(r *Router) (*Route, error) { return r.Use(noop(), ErrorHandler(nil)) },
				is:       []error{ErrConfiguration},
			},
			{
				name:     "zero middleware",
				register: func(r *Router) (*Route, error) { return r.Use(Middleware{}) },
				is:       []error{ErrConfiguration},
			},
			{
				name:     "invalid pattern",
				register: func(r *Router) (*Route, error) { return r.UsePattern("/x(", noop()) },
				is:       []error{ErrConfiguration, pathmatch.ErrInvalidPattern},
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				r, _ := newMemoryRouter(t, "/")

				route, err := tt.register(r)
				assert.Nil(t, route)
				for _, target := range tt.is {
					assert.ErrorIs(t, err, target)
				}
				assert.Empty(t, r.Routes())
			})
		}
	})

	t.Run("last registration wins the name", func(t *testing.T) {
		r, _ := newMemoryRouter(t, "/a")

		first, err := r.UseNamed("dup", "/a", noop())
		require.NoError(t, err)
		second, err := r.UseNamed("dup", "/:x", noop())
		require.NoError(t, err)

		assert.Equal(t, []*Route{first, second}, r.Routes())
		assert.Same(t, second, r.Route("dup"))
		assert.Equal(t, []*Route{first, second}, r.Matches())
		assert.Same(t, second, r.Match("dup"))
	})
}

func TestRouterIdentity(t *testing.T) {
	seq := NewSequence(100)

	r1, _ := newMemoryRouter(t, "/", WithSequence(seq))
	a, err := r1.Use(noop())
	require.NoError(t, err)
	b, err := r1.Use(noop())
	require.NoError(t, err)

	r2, _ := newMemoryRouter(t, "/", WithSequence(seq))

	assert.Equal(t, int64(100), r1.ID())
	assert.Equal(t, int64(101), a.ID())
	assert.Equal(t, int64(102), b.ID())
	assert.Equal(t, int64(103), r2.ID())

	r3, _ := newMemoryRouter(t, "/")
	c, err := r3.Use(noop())
	require.NoError(t, err)
	assert.Equal(t, int64(0), r3.ID())
	assert.Equal(t, int64(1), c.ID())
}

func TestRouterBuild(t *testing.T) {
	t.Run("registration matches immediately without running", func(t *testing.T) {
		r, _ := newMemoryRouter(t, "/resource/foo")

		var calls int
		route, err := r.UseNamed("resource", "/resource/:id", counter(&calls))
		require.NoError(t, err)

		assert.Equal(t, []*Route{route}, r.Matches())
		assert.Equal(t, "foo", route.Params()["id"])
		assert.Equal(t, "foo", r.Request().Params.Get("id"))
		assert.Zero(t, calls)

		r.Run()
		assert.Equal(t, 1, calls)
		assert.True(t, r.Running())
	})

	t.Run("matches in registration order", func(t *testing.T) {
		r, _ := newMemoryRouter(t, "/users/42")

		_, _ = r.UseNamed("user", "/users/:id", noop())
		_, _ = r.UseNamed("post", "/posts/:id", noop())
		_, _ = r.UseNamed("users-any", "/users/*", noop())
		_, _ = r.Use(noop())

		assert.Equal(t, []string{"user", "users-any", "__route_3"}, routeNames(r.Matches()))
		assert.Nil(t, r.Match("post"))
		assert.NotNil(t, r.Match("user"))

		r.Build()
		assert.Equal(t, []string{"user", "users-any", "__route_3"}, routeNames(r.Matches()))
	})

	t.Run("later routes overwrite request params", func(t *testing.T) {
		r, _ := newMemoryRouter(t, "/items/7")

		generic, err := r.UseNamed("generic", "/:id/:rest", noop())
		require.NoError(t, err)
		items, err := r.UseNamed("items", "/items/:id", noop())
		require.NoError(t, err)

		assert.Equal(t, Params{"id": "items", "rest": "7"}, generic.Params())
		assert.Equal(t, Params{"id": "7"}, items.Params())
		assert.Equal(t, Params{"id": "7", "rest": "7"}, r.Request().Params)
	})

	t.Run("unmatched routes are cleared", func(t *testing.T) {
		r, loc := newMemoryRouter(t, "/users/1")

		route, err := r.UseNamed("user", "/users/:id", noop())
		require.NoError(t, err)
		assert.Equal(t, "1", route.Params().Get("id"))

		loc.Replace("/other")
		assert.Empty(t, route.Params())
		assert.Empty(t, r.Matches())
	})

	t.Run("query is shared with matched routes", func(t *testing.T) {
		r, _ := newMemoryRouter(t, "/search?q=go&tag=a&tag=b")

		route, err := r.UsePattern("/search", noop())
		require.NoError(t, err)

		assert.Equal(t, "/search", r.Request().Current)
		assert.Equal(t, []string{"a", "b"}, r.Request().Query["tag"])
		assert.Equal(t, "go", route.Query().Get("q"))

		route.Query().Set("page", "2")
		assert.Equal(t, "2", r.Request().Query.Get("page"))
	})

	t.Run("build replaces the request", func(t *testing.T) {
		r, _ := newMemoryRouter(t, "/")

		before := r.Request()
		before.Ctx["stale"] = true

		r.Build()
		after := r.Request()

		assert.NotSame(t, before, after)
		assert.NotEqual(t, before.ID, after.ID)
		assert.Empty(t, after.Ctx)

		id, err := uuid.Parse(after.ID)
		require.NoError(t, err)
		assert.Equal(t, uuid.Version(7), id.Version())
	})

	t.Run("foreign and nil routes are ignored", func(t *testing.T) {
		r1, _ := newMemoryRouter(t, "/")
		r2, _ := newMemoryRouter(t, "/")

		foreign, err := r2.Use(noop())
		require.NoError(t, err)

		r1.BuildRoute(foreign).BuildRoute(nil)
		assert.Empty(t, r1.Matches())
	})
}

func TestRouterFollowsLocation(t *testing.T) {
	r, loc := newMemoryRouter(t, "/")

	var about, catchAll int
	_, err := r.UseNamed("about", "/about", counter(&about))
	require.NoError(t, err)
	_, err = r.Use(counter(&catchAll))
	require.NoError(t, err)

	r.GoToLocation("/about")
	assert.Equal(t, 1, about)
	assert.Equal(t, 1, catchAll)
	assert.Equal(t, "/about", r.Current())

	r.GoBack()
	assert.Equal(t, "/", r.Current())
	assert.Equal(t, 1, about)
	assert.Equal(t, 2, catchAll)

	r.GoForward()
	assert.Equal(t, 2, about)

	r.ReplaceLocation("/contact")
	assert.Equal(t, []string{"/", "/contact"}, loc.Entries())
	assert.Equal(t, 4, catchAll)
	assert.True(t, r.Running())
}

func TestRouterHashLocation(t *testing.T) {
	host, err := location.NewMemoryHost("http://localhost/index.html#/")
	require.NoError(t, err)

	r, err := New(WithHost(host))
	require.NoError(t, err)

	var homes int
	var users []string

	_, err = r.UseNamed("home", "/", counter(&homes))
	require.NoError(t, err)
	_, err = r.UseNamed("user", "/users/:id", Handler(func(req *Request, next Next) {
		users = append(users, req.Params["id"])
		next(nil)
	}))
	require.NoError(t, err)

	full, err := r.GetFullURL("home", nil)
	require.NoError(t, err)
	assert.Equal(t, r.BaseURL()+"#/", full)
	assert.Equal(t, "http://localhost/index.html#/", full)

	require.NoError(t, r.GoTo("user", Params{"id": "7"}))
	assert.Empty(t, users, "hash changes are delivered asynchronously")

	host.Flush()
	assert.Equal(t, []string{"7"}, users)
	assert.Equal(t, "#/users/7", r.URL())
	assert.Equal(t, "http://localhost/index.html#/users/7", r.FullURL())

	r.GoBack()
	host.Flush()
	assert.Equal(t, 1, homes)
	assert.Equal(t, "/", r.Current())
}

func TestRouterClose(t *testing.T) {
	r, _ := newMemoryRouter(t, "/")

	var calls int
	_, err := r.Use(counter(&calls))
	require.NoError(t, err)

	r.Close()
	r.Close()

	r.GoToLocation("/elsewhere")
	assert.Zero(t, calls)
	assert.Equal(t, "/elsewhere", r.Current())
	assert.Len(t, r.Routes(), 1)
}
