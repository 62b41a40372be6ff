package main

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/vitalvas/routux/router"
)

var errNoRoutes = errors.New("route table has no routes")

type routeEntry struct {
	Name    string `yaml:"name"`
	Pattern string `yaml:"pattern"`
}

// routeTable is the file format of --routes.
type routeTable struct {
	Config router.Config `yaml:"config"`
	Routes []routeEntry  `yaml:"routes"`
}

func loadTable(path string) (*routeTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read route table: %w", err)
	}

	table := &routeTable{Config: router.DefaultConfig()}
	if err := yaml.Unmarshal(data, table); err != nil {
		return nil, fmt.Errorf("parse route table %s: %w", path, err)
	}

	if len(table.Routes) == 0 {
		return nil, fmt.Errorf("%s: %w", path, errNoRoutes)
	}

	return table, nil
}

// newRouter registers every route of the table with mw as its only
// middleware.
func newRouter(table *routeTable, cfg router.Config, logger *zap.Logger, mw router.Middleware) (*router.Router, error) {
	r, err := router.New(router.WithConfig(cfg), router.WithLogger(logger))
	if err != nil {
		return nil, err
	}

	for _, e := range table.Routes {
		if _, err := r.UseRoute(router.RouteDef{
			Name:        e.Name,
			Pattern:     e.Pattern,
			Middlewares: []router.Middleware{mw},
		}); err != nil {
			return nil, err
		}
	}

	return r, nil
}

func passThrough() router.Middleware {
	return router.Handler(func(_ *router.Request, next router.Next) { next(nil) })
}

// formatParams renders params as sorted key=value pairs, "-" when empty.
func formatParams(params router.Params) string {
	if len(params) == 0 {
		return "-"
	}

	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, len(keys))
	for i, k := range keys {
		pairs[i] = k + "=" + params[k]
	}
	return strings.Join(pairs, " ")
}

// parseParams parses key=value arguments.
func parseParams(args []string) (router.Params, error) {
	params := make(router.Params, len(args))
	for _, arg := range args {
		k, v, ok := strings.Cut(arg, "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("invalid parameter %q, expected key=value", arg)
		}
		params[k] = v
	}
	return params, nil
}
