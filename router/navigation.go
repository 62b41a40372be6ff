package router

import "fmt"

// named is implemented by values referring to a route by name.
type named interface {
	Name() string
}

// GetRoute resolves ref to a registered route. ref is a *Route, a route
// name, or any value with a Name method; it is always resolved by name,
// so a route whose name was taken over resolves to the newer route.
func (r *Router) GetRoute(ref any) (*Route, error) {
	var name string

	switch v := ref.(type) {
	case *Route:
		if v == nil {
			return nil, fmt.Errorf("%w: nil route", ErrReference)
		}
		name = v.name
	case string:
		name = v
	case named:
		name = v.Name()
	case nil:
		return nil, fmt.Errorf("%w: nil reference", ErrReference)
	default:
		return nil, fmt.Errorf("%w: unsupported reference type %T", ErrReference, ref)
	}

	if name == "" {
		return nil, fmt.Errorf("%w: empty route name", ErrReference)
	}

	route, ok := r.namedRoutes[name]
	if !ok {
		return nil, fmt.Errorf("%w: no route named %q", ErrReference, name)
	}

	return route, nil
}

// GetPath builds the path of the referenced route.
func (r *Router) GetPath(ref any, params Params) (string, error) {
	route, err := r.GetRoute(ref)
	if err != nil {
		return "", err
	}
	return route.GetPath(params)
}

// GetURL builds the URL of the referenced route relative to BaseURL,
// e.g. "#/users/1".
func (r *Router) GetURL(ref any, params Params) (string, error) {
	route, err := r.GetRoute(ref)
	if err != nil {
		return "", err
	}
	return route.GetURL(params)
}

// GetFullURL builds the absolute URL of the referenced route.
func (r *Router) GetFullURL(ref any, params Params) (string, error) {
	route, err := r.GetRoute(ref)
	if err != nil {
		return "", err
	}
	return route.GetFullURL(params)
}

// GoTo pushes the path of the referenced route.
func (r *Router) GoTo(ref any, params Params) error {
	path, err := r.GetPath(ref, params)
	if err != nil {
		return err
	}
	r.GoToLocation(path)
	return nil
}

// ReplaceWith replaces the current location with the path of the
// referenced route.
func (r *Router) ReplaceWith(ref any, params Params) error {
	path, err := r.GetPath(ref, params)
	if err != nil {
		return err
	}
	r.ReplaceLocation(path)
	return nil
}

// GoToLocation pushes path.
func (r *Router) GoToLocation(path string) *Router {
	r.location.Push(path)
	return r
}

// ReplaceLocation replaces the current location with path.
func (r *Router) ReplaceLocation(path string) *Router {
	r.location.Replace(path)
	return r
}

// GoBack goes one entry back in the history.
func (r *Router) GoBack() *Router {
	r.location.HistoryBack()
	return r
}

// GoForward goes one entry forward in the history.
func (r *Router) GoForward() *Router {
	r.location.HistoryForward()
	return r
}
