// Package location abstracts where the current navigable path comes from.
//
// A Location exposes the current path, query string and URLs, navigates
// with Push, Replace, HistoryBack and HistoryForward, and notifies
// listeners after every change:
//
//	l := location.NewMemoryAdapter(location.Options{Initial: "/home"})
//	l.AddChangeListener(location.NewListener(func(c location.Change) {
//	    fmt.Println(c.Type, c.Path) // push /about
//	}))
//	l.Push("/about")
//
// # Adapters
//
// HashAdapter keeps the path in the URL fragment ("index.html#/path") of a
// Host, the environment counterpart of a browser window. MemoryHost is an
// in-memory Host whose fragment change events are delivered by Flush,
// the way a browser delivers them after the current task:
//
//	host, _ := location.NewMemoryHost("https://example.com/app/#/home")
//	l := location.NewHashAdapter(host, location.Options{})
//	l.Current() // "/home"
//	l.URL()     // "#/home"
//
// MemoryAdapter keeps its own history and notifies synchronously.
//
// Adapters are also available by name through New, "hash" and "memory",
// and Register adds more.
//
// # State machine
//
// Adapters embed Base. Navigation records a pending action (push, replace
// or pop); the environment then reports a change and Base.OnChange
// notifies listeners with that action, or pop when none was pending
// (back and forward buttons, manual edits). A path without leading slash
// is corrected with a replace first, and only the corrected path is
// notified.
//
// Locations are not safe for concurrent use.
package location
