package router

import "net/url"

// Params maps parameter names to captured values.
type Params map[string]string

// Get returns the value of name, or "" when absent.
func (p Params) Get(name string) string {
	return p[name]
}

// Request is the context of one dispatch cycle. A single *Request is
// created by every Reset and handed to each middleware of the cycle in
// turn, so state stored in Ctx by one middleware is visible to the next.
type Request struct {
	// ID identifies the dispatch cycle (UUIDv7).
	ID string
	// Current is the normalised current path.
	Current string
	// Query holds the parsed query string of the location.
	Query url.Values
	// Params is the union of the captures of all matched routes; later
	// routes overwrite earlier ones.
	Params Params
	// Ctx carries arbitrary state between middlewares.
	Ctx map[string]any

	route *Route
}

// Route returns the route owning the middleware currently executing, or
// nil outside of Run.
func (r *Request) Route() *Route {
	return r.route
}
