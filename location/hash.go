package location

import (
	"strings"
)

// DefaultPathPrefix is the fragment marker used by HashAdapter.
const DefaultPathPrefix = "#"

// HashAdapter is a Location keeping the path in the URL fragment,
// "index.html#/path", layered over a Host.
type HashAdapter struct {
	Base

	host       Host
	pathPrefix string
	cancel     func()
}

// NewHashAdapter creates a hash location over host. opts.PathPrefix
// overrides the "#" marker and must itself start with "#".
func NewHashAdapter(host Host, opts Options) *HashAdapter {
	prefix := opts.PathPrefix
	if prefix == "" {
		prefix = DefaultPathPrefix
	}

	h := &HashAdapter{
		host:       host,
		pathPrefix: prefix,
	}
	h.Bind(h)

	return h
}

func newHashFromOptions(opts Options) (Location, error) {
	host := opts.Host
	if host == nil {
		base := opts.BaseURL
		if base == "" {
			base = "http://localhost/"
		}
		if opts.Initial != "" && !strings.Contains(base, "#") {
			prefix := opts.PathPrefix
			if prefix == "" {
				prefix = DefaultPathPrefix
			}
			base += prefix + opts.Initial
		}

		mh, err := NewMemoryHost(base)
		if err != nil {
			return nil, err
		}
		host = mh
	}

	return NewHashAdapter(host, opts), nil
}

// Host returns the environment the adapter is layered over.
func (h *HashAdapter) Host() Host {
	return h.host
}

// PathPrefix returns the fragment marker.
func (h *HashAdapter) PathPrefix() string {
	return h.pathPrefix
}

// URLPrefix returns the prefix placed before paths to build URLs, the
// fragment marker.
func (h *HashAdapter) URLPrefix() string {
	return h.pathPrefix
}

// Current returns the path held in the fragment. The full href is used
// rather than the fragment accessor so that the decoding is the same on
// every host.
func (h *HashAdapter) Current() string {
	return h.normalizePath(h.host.Href())
}

// QueryString returns the query string of the document URL without "?".
func (h *HashAdapter) QueryString() string {
	return strings.TrimPrefix(h.host.Search(), "?")
}

// BaseURL returns origin and path of the document.
func (h *HashAdapter) BaseURL() string {
	return h.host.Origin() + h.host.Pathname()
}

// URL returns the current URL relative to the document, "#/path".
func (h *HashAdapter) URL() string {
	return h.pathPrefix + h.normalizePath(h.host.Hash())
}

// FullURL returns the current absolute URL.
func (h *HashAdapter) FullURL() string {
	return h.BaseURL() + strings.TrimPrefix(h.URL(), "/")
}

// normalizePath strips the base URL and everything up to the fragment
// marker, then decodes. Without marker the whole remainder is the path.
func (h *HashAdapter) normalizePath(path string) string {
	if base := h.BaseURL(); path != "" && strings.HasPrefix(path, base) {
		path = path[len(base):]
	}

	_, rest, found := strings.Cut(path, h.pathPrefix)
	if !found {
		return decodeURI(path)
	}

	rest, _, _ = strings.Cut(rest, h.pathPrefix)

	return decodeURI(rest)
}

// Push adds path to the history.
func (h *HashAdapter) Push(path string) {
	h.Base.Push(path)
	h.host.SetHash(h.pathPrefix + path)
}

// Replace replaces the current history entry with path.
func (h *HashAdapter) Replace(path string) {
	h.Base.Replace(path)
	h.host.ReplaceURL(h.host.Pathname() + h.host.Search() + h.pathPrefix + path)
}

// HistoryBack goes one entry back.
func (h *HashAdapter) HistoryBack() {
	h.Base.HistoryBack()
	h.host.Back()
}

// HistoryForward goes one entry forward.
func (h *HashAdapter) HistoryForward() {
	h.Base.HistoryForward()
	h.host.Forward()
}

// AddChangeListener registers l and starts observing the host on the
// first registration.
func (h *HashAdapter) AddChangeListener(l *Listener) {
	h.Base.AddChangeListener(l)

	if h.cancel == nil {
		h.cancel = h.host.Subscribe(h.OnChange)
	}
}

// RemoveChangeListener unregisters l and stops observing the host once
// no listener remains.
func (h *HashAdapter) RemoveChangeListener(l *Listener) {
	h.Base.RemoveChangeListener(l)

	if h.Listeners() == 0 && h.cancel != nil {
		h.cancel()
		h.cancel = nil
	}
}

// Listening reports whether the adapter observes its host.
func (h *HashAdapter) Listening() bool {
	return h.cancel != nil
}
