package location

import (
	"fmt"
	"net/url"
	"sort"
	"sync"
)

// Action is the navigation action that caused a location change.
type Action string

// Navigation actions.
const (
	// ActionNone means no navigation is pending.
	ActionNone Action = ""
	// ActionPush indicates a new location is being pushed to the history.
	ActionPush Action = "push"
	// ActionReplace indicates the current location is being replaced.
	ActionReplace Action = "replace"
	// ActionPop indicates the most recent entry was left, by going back
	// or forward or by editing the address manually.
	ActionPop Action = "pop"
)

// Change is delivered to listeners after the location changed.
type Change struct {
	Path string
	Type Action
}

// Listener receives location changes. Listeners are identified by pointer,
// so the same *Listener must be passed to RemoveChangeListener.
type Listener struct {
	fn func(Change)
}

// NewListener wraps fn into a Listener.
func NewListener(fn func(Change)) *Listener {
	return &Listener{fn: fn}
}

// Notify calls the wrapped function.
func (l *Listener) Notify(c Change) {
	if l != nil && l.fn != nil {
		l.fn(c)
	}
}

// Location is the capability a router needs from its navigation source.
// Paths returned by Current are normalised to start with "/".
type Location interface {
	// Current returns the current path without URL prefix.
	Current() string
	// QueryString returns the raw query string without "?".
	QueryString() string
	// BaseURL returns the absolute base URL.
	BaseURL() string
	// URL returns the current URL relative to BaseURL.
	URL() string
	// FullURL returns the current absolute URL.
	FullURL() string
	// URLPrefix returns the prefix placed before paths to build URLs.
	URLPrefix() string

	Push(path string)
	Replace(path string)
	HistoryBack()
	HistoryForward()

	// EnsureSlash replaces the current path with "/"+path when it does
	// not start with a slash and reports whether it was already valid.
	EnsureSlash() bool

	AddChangeListener(l *Listener)
	RemoveChangeListener(l *Listener)
}

// ParseQuery parses a raw query string. Malformed pairs are skipped.
func ParseQuery(qs string) url.Values {
	values, _ := url.ParseQuery(qs) //nolint:errcheck // partial values are kept
	if values == nil {
		values = url.Values{}
	}
	return values
}

// Options configure the built-in adapters.
type Options struct {
	// PathPrefix separates the base URL from the path, "#" by default
	// for the hash adapter.
	PathPrefix string `yaml:"path_prefix"`
	// BaseURL is the absolute URL of the document. The hash adapter uses it
	// to create a MemoryHost when Host is nil.
	BaseURL string `yaml:"base_url"`
	// Initial is the path the location starts at.
	Initial string `yaml:"initial"`
	// Host is the environment the hash adapter is layered over.
	Host Host `yaml:"-"`
}

// Factory creates a Location from options.
type Factory func(opts Options) (Location, error)

var (
	registryMu sync.RWMutex
	registry   = map[string]Factory{
		"hash":   newHashFromOptions,
		"memory": newMemoryFromOptions,
	}
)

// Register makes a factory available under name, replacing any factory
// registered under the same name.
func Register(name string, f Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	registry[name] = f
}

// Lookup returns the factory registered under name.
func Lookup(name string) (Factory, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	f, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAdapter, name)
	}
	return f, nil
}

// Adapters returns the registered adapter names, sorted.
func Adapters() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New creates a Location using the factory registered under name.
func New(name string, opts Options) (Location, error) {
	f, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	return f(opts)
}
