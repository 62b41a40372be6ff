package location

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryAdapterURLs(t *testing.T) {
	m := NewMemoryAdapter(Options{Initial: "/caf%C3%A9?x=1&y=2"})

	assert.Equal(t, "/café", m.Current())
	assert.Equal(t, "x=1&y=2", m.QueryString())
	assert.Equal(t, DefaultMemoryBaseURL, m.BaseURL())
	assert.Equal(t, "/caf%C3%A9?x=1&y=2", m.URL())
	assert.Equal(t, "memory:///caf%C3%A9?x=1&y=2", m.FullURL())
	assert.Empty(t, m.URLPrefix())
}

func TestMemoryAdapterDefaults(t *testing.T) {
	m := NewMemoryAdapter(Options{BaseURL: "app://local/"})

	assert.Equal(t, "/", m.Current())
	assert.Equal(t, "app://local/", m.BaseURL())
	assert.Equal(t, "app://local/", m.FullURL())
}

func TestMemoryAdapterNavigation(t *testing.T) {
	m := NewMemoryAdapter(Options{Initial: "/home"})
	got := recordChanges(m)

	m.Push("/a")
	m.Push("/b")
	m.HistoryBack()
	m.Replace("/c")
	m.HistoryForward()

	assert.Equal(t, []Change{
		{Path: "/a", Type: ActionPush},
		{Path: "/b", Type: ActionPush},
		{Path: "/a", Type: ActionPop},
		{Path: "/c", Type: ActionReplace},
		{Path: "/b", Type: ActionPush},
	}, *got)
	assert.Equal(t, []string{"/home", "/c", "/b"}, m.Entries())
	assert.Equal(t, 2, m.Index())
}

func TestMemoryAdapterHistoryBounds(t *testing.T) {
	m := NewMemoryAdapter(Options{})
	got := recordChanges(m)

	m.HistoryBack()
	m.HistoryForward()
	assert.Empty(t, *got)

	m.Push("/a")
	m.HistoryBack()
	m.Push("/b")
	assert.Equal(t, []string{"/", "/b"}, m.Entries())
}

func TestMemoryAdapterEnsureSlash(t *testing.T) {
	m := NewMemoryAdapter(Options{Initial: "home"})
	got := recordChanges(m)

	assert.Equal(t, "/home", m.Current())
	assert.Empty(t, *got, "initial correction is not delivered")

	m.Push("about")
	require.Len(t, *got, 1)
	assert.Equal(t, Change{Path: "/about", Type: ActionReplace}, (*got)[0])
	assert.Equal(t, []string{"/home", "/about"}, m.Entries())
}

func TestMemoryAdapterNestedNavigation(t *testing.T) {
	m := NewMemoryAdapter(Options{})

	var got []Change
	m.AddChangeListener(NewListener(func(c Change) {
		got = append(got, c)
		if c.Path == "/old" {
			m.Replace("/new")
		}
	}))

	m.Push("/old")

	assert.Equal(t, []Change{
		{Path: "/old", Type: ActionPush},
		{Path: "/new", Type: ActionReplace},
	}, got)
}

func TestMemoryAdapterStopsListening(t *testing.T) {
	m := NewMemoryAdapter(Options{})

	var calls int
	l := NewListener(func(Change) { calls++ })
	m.AddChangeListener(l)
	m.RemoveChangeListener(l)

	m.Push("/a")
	assert.Zero(t, calls)
	assert.Equal(t, "/a", m.Current())
}
