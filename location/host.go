package location

import (
	"fmt"
	"net"
	"net/url"
	"strings"
	"sync"

	"golang.org/x/net/idna"
)

// Host is the addressable environment the hash adapter is layered over,
// the counterpart of a browser window: an absolute URL, a history stack
// and fragment change events.
type Host interface {
	// Href returns the absolute URL of the current entry.
	Href() string
	// Origin returns scheme and host, e.g. "https://example.com".
	Origin() string
	// Pathname returns the escaped path of the current entry.
	Pathname() string
	// Search returns the query string including "?", or "".
	Search() string
	// Hash returns the fragment including "#", or "".
	Hash() string

	// SetHash sets the fragment, adding a history entry.
	SetHash(hash string)
	// ReplaceURL replaces the current entry with rel resolved against it.
	ReplaceURL(rel string)
	// Back moves one entry back in the history.
	Back()
	// Forward moves one entry forward in the history.
	Forward()

	// Subscribe registers fn for fragment change events. The returned
	// function cancels the subscription.
	Subscribe(fn func()) (cancel func())
}

type subscription struct {
	fn        func()
	cancelled bool
}

// MemoryHost is an in-memory Host. Fragment change events are queued
// like browser tasks and delivered by Flush, so changes made while
// handling an event are observed after the handler returns.
type MemoryHost struct {
	mu      sync.Mutex
	entries []*url.URL
	index   int
	subs    []*subscription
	pending int
}

// NewMemoryHost creates a host whose single history entry is rawURL.
// The URL must be absolute; its host is converted to ASCII using IDNA
// lookup rules.
func NewMemoryHost(rawURL string) (*MemoryHost, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%w: %q is not absolute", ErrInvalidURL, rawURL)
	}

	host, err := idna.Lookup.ToASCII(u.Hostname())
	if err != nil {
		return nil, fmt.Errorf("%w: host %q: %v", ErrInvalidURL, u.Hostname(), err)
	}
	if port := u.Port(); port != "" {
		host = net.JoinHostPort(host, port)
	}
	u.Host = host

	if u.Path == "" {
		u.Path = "/"
	}

	return &MemoryHost{entries: []*url.URL{u}}, nil
}

func (h *MemoryHost) current() *url.URL {
	return h.entries[h.index]
}

// Href returns the absolute URL of the current entry.
func (h *MemoryHost) Href() string {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.current().String()
}

// Origin returns scheme and host of the current entry.
func (h *MemoryHost) Origin() string {
	h.mu.Lock()
	defer h.mu.Unlock()

	u := h.current()
	return u.Scheme + "://" + u.Host
}

// Pathname returns the escaped path of the current entry.
func (h *MemoryHost) Pathname() string {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.current().EscapedPath()
}

// Search returns the query string of the current entry including "?".
func (h *MemoryHost) Search() string {
	h.mu.Lock()
	defer h.mu.Unlock()

	if q := h.current().RawQuery; q != "" {
		return "?" + q
	}
	return ""
}

// Hash returns the fragment of the current entry including "#".
func (h *MemoryHost) Hash() string {
	h.mu.Lock()
	defer h.mu.Unlock()

	return hashOf(h.current())
}

// SetHash sets the fragment. A different fragment adds a history entry,
// dropping entries ahead of the current one, and queues a change event.
func (h *MemoryHost) SetHash(hash string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	cur := h.current()
	next := withFragment(cur, strings.TrimPrefix(hash, "#"))
	if hashOf(next) == hashOf(cur) {
		return
	}

	h.entries = append(h.entries[:h.index+1], next)
	h.index++
	h.pending++
}

// ReplaceURL replaces the current entry with rel resolved against it.
// A change event is queued when the fragment differs.
func (h *MemoryHost) ReplaceURL(rel string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	cur := h.current()
	next := h.resolve(cur, rel)

	h.entries[h.index] = next
	if hashOf(next) != hashOf(cur) {
		h.pending++
	}
}

// Navigate adds rel resolved against the current entry to the history,
// as a manual edit of the address would. A change event is queued when
// the fragment differs.
func (h *MemoryHost) Navigate(rel string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	cur := h.current()
	next := h.resolve(cur, rel)

	h.entries = append(h.entries[:h.index+1], next)
	h.index++
	if hashOf(next) != hashOf(cur) {
		h.pending++
	}
}

// Back moves one entry back. Nothing happens at the first entry.
func (h *MemoryHost) Back() {
	h.traverse(-1)
}

// Forward moves one entry forward. Nothing happens at the last entry.
func (h *MemoryHost) Forward() {
	h.traverse(1)
}

func (h *MemoryHost) traverse(delta int) {
	h.mu.Lock()
	defer h.mu.Unlock()

	i := h.index + delta
	if i < 0 || i >= len(h.entries) {
		return
	}

	cur := h.current()
	h.index = i
	if hashOf(h.current()) != hashOf(cur) {
		h.pending++
	}
}

// Subscribe registers fn for fragment change events.
func (h *MemoryHost) Subscribe(fn func()) func() {
	h.mu.Lock()
	defer h.mu.Unlock()

	s := &subscription{fn: fn}
	h.subs = append(h.subs, s)

	return func() {
		h.mu.Lock()
		defer h.mu.Unlock()

		s.cancelled = true
		kept := h.subs[:0]
		for _, other := range h.subs {
			if other != s {
				kept = append(kept, other)
			}
		}
		h.subs = kept
	}
}

// Flush delivers queued change events, including events queued while
// delivering, and returns how many were delivered.
func (h *MemoryHost) Flush() int {
	delivered := 0

	for {
		h.mu.Lock()
		if h.pending == 0 {
			h.mu.Unlock()
			return delivered
		}
		h.pending--
		subs := make([]*subscription, len(h.subs))
		copy(subs, h.subs)
		h.mu.Unlock()

		delivered++
		for _, s := range subs {
			if !s.cancelled {
				s.fn()
			}
		}
	}
}

// Pending returns the number of queued change events.
func (h *MemoryHost) Pending() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.pending
}

// Entries returns the history as absolute URLs.
func (h *MemoryHost) Entries() []string {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := make([]string, len(h.entries))
	for i, u := range h.entries {
		out[i] = u.String()
	}
	return out
}

// Index returns the position of the current entry in Entries.
func (h *MemoryHost) Index() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.index
}

// resolve resolves rel against cur, keeping cur when rel is malformed.
// The fragment of rel is taken verbatim so that an empty one clears it.
func (h *MemoryHost) resolve(cur *url.URL, rel string) *url.URL {
	ref, frag, _ := strings.Cut(rel, "#")

	next := cur
	if ref != "" {
		u, err := url.Parse(ref)
		if err == nil {
			next = cur.ResolveReference(u)
		}
	}

	return withFragment(next, frag)
}

func hashOf(u *url.URL) string {
	if u.Fragment == "" {
		return ""
	}
	return "#" + u.EscapedFragment()
}

// withFragment returns a copy of u with the raw fragment set.
func withFragment(u *url.URL, raw string) *url.URL {
	next := *u
	next.Fragment = ""
	next.RawFragment = ""

	if raw == "" {
		return &next
	}

	if frag, err := url.PathUnescape(raw); err == nil {
		next.Fragment = frag
		next.RawFragment = raw
	} else {
		next.Fragment = raw
	}

	return &next
}
