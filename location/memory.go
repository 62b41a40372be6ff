package location

import (
	"strings"
)

// DefaultMemoryBaseURL is the base URL of a MemoryAdapter without one.
const DefaultMemoryBaseURL = "memory:///"

// MemoryAdapter is a Location for hosts without an addressable URL. It
// keeps its own history of paths and notifies listeners synchronously.
// Changes made while listeners are being notified are delivered once the
// current notification returns.
type MemoryAdapter struct {
	Base

	baseURL   string
	entries   []string
	index     int
	listening bool
	notifying bool
	queued    int
}

// NewMemoryAdapter creates an in-memory location starting at
// opts.Initial, "/" by default.
func NewMemoryAdapter(opts Options) *MemoryAdapter {
	base := opts.BaseURL
	if base == "" {
		base = DefaultMemoryBaseURL
	}

	initial := opts.Initial
	if initial == "" {
		initial = "/"
	}

	m := &MemoryAdapter{
		baseURL: base,
		entries: []string{initial},
	}
	m.Bind(m)

	return m
}

func newMemoryFromOptions(opts Options) (Location, error) {
	return NewMemoryAdapter(opts), nil
}

func (m *MemoryAdapter) entry() string {
	return m.entries[m.index]
}

// Current returns the decoded path of the current entry.
func (m *MemoryAdapter) Current() string {
	path, _, _ := strings.Cut(m.entry(), "?")
	return decodeURI(path)
}

// QueryString returns the query of the current entry without "?".
func (m *MemoryAdapter) QueryString() string {
	_, qs, _ := strings.Cut(m.entry(), "?")
	return qs
}

// BaseURL returns the configured base URL.
func (m *MemoryAdapter) BaseURL() string {
	return m.baseURL
}

// URL returns the current entry as stored, path and query.
func (m *MemoryAdapter) URL() string {
	return m.entry()
}

// FullURL returns BaseURL followed by URL without its leading slash.
func (m *MemoryAdapter) FullURL() string {
	return m.baseURL + strings.TrimPrefix(m.URL(), "/")
}

// URLPrefix is empty, paths are URLs.
func (m *MemoryAdapter) URLPrefix() string {
	return ""
}

// Push adds path to the history, dropping entries ahead of the current
// one.
func (m *MemoryAdapter) Push(path string) {
	m.Base.Push(path)

	m.entries = append(m.entries[:m.index+1], path)
	m.index++
	m.changed()
}

// Replace replaces the current entry with path.
func (m *MemoryAdapter) Replace(path string) {
	m.Base.Replace(path)

	m.entries[m.index] = path
	m.changed()
}

// HistoryBack goes one entry back. Nothing changes at the first entry.
func (m *MemoryAdapter) HistoryBack() {
	m.Base.HistoryBack()

	if m.index > 0 {
		m.index--
		m.changed()
	}
}

// HistoryForward goes one entry forward. Nothing changes at the last
// entry.
func (m *MemoryAdapter) HistoryForward() {
	m.Base.HistoryForward()

	if m.index < len(m.entries)-1 {
		m.index++
		m.changed()
	}
}

// AddChangeListener registers l; the adapter starts delivering changes
// after the first registration.
func (m *MemoryAdapter) AddChangeListener(l *Listener) {
	m.Base.AddChangeListener(l)
	m.listening = true
}

// RemoveChangeListener unregisters l; changes are no longer delivered
// once no listener remains.
func (m *MemoryAdapter) RemoveChangeListener(l *Listener) {
	m.Base.RemoveChangeListener(l)

	if m.Listeners() == 0 {
		m.listening = false
	}
}

// Entries returns a copy of the history.
func (m *MemoryAdapter) Entries() []string {
	out := make([]string, len(m.entries))
	copy(out, m.entries)
	return out
}

// Index returns the position of the current entry in Entries.
func (m *MemoryAdapter) Index() int {
	return m.index
}

func (m *MemoryAdapter) changed() {
	if !m.listening {
		return
	}

	m.queued++
	if m.notifying {
		return
	}

	m.notifying = true
	defer func() { m.notifying = false }()

	for m.queued > 0 {
		m.queued--
		m.OnChange()
	}
}
