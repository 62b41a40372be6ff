package routehandlers

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vitalvas/routux/location"
	"github.com/vitalvas/routux/router"
)

func newRouter(t *testing.T, initial string, opts ...router.Option) (*router.Router, *location.MemoryAdapter) {
	t.Helper()

	loc := location.NewMemoryAdapter(location.Options{Initial: initial})
	r, err := router.New(append([]router.Option{router.WithLocation(loc)}, opts...)...)
	require.NoError(t, err)

	return r, loc
}

func record(calls *[]string, name string) router.Middleware {
	return router.Handler(func(_ *router.Request, next router.Next) {
		*calls = append(*calls, name)
		next(nil)
	})
}

func recordError(errs *[]error) router.Middleware {
	return router.ErrorHandler(func(err error, _ *router.Request, _ router.Next) {
		*errs = append(*errs, err)
	})
}
