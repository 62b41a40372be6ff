package location

import (
	"fmt"
	"strings"
)

// adapter is the part of an adapter the shared state machine calls back.
type adapter interface {
	Current() string
	Replace(path string)
}

// Base carries the state shared by adapters: the pending action and the
// listener list. Adapters embed it, call Bind with themselves and call
// the embedded Push, Replace and Pop before mutating their environment.
// It is not safe for concurrent use.
type Base struct {
	self      adapter
	action    Action
	listeners []*Listener
}

// Bind sets the adapter whose Current and Replace the state machine uses.
func (b *Base) Bind(a adapter) {
	b.self = a
}

func (b *Base) bound() adapter {
	if b.self == nil {
		panic(fmt.Errorf("%w: Base used without Bind", ErrNotImplemented))
	}
	return b.self
}

// Action returns the pending navigation action.
func (b *Base) Action() Action {
	return b.action
}

// Push records a pending push.
func (b *Base) Push(string) {
	b.action = ActionPush
}

// Replace records a pending replace.
func (b *Base) Replace(string) {
	b.action = ActionReplace
}

// Pop records a pending pop.
func (b *Base) Pop() {
	b.action = ActionPop
}

// HistoryBack records a pending pop.
func (b *Base) HistoryBack() {
	b.Pop()
}

// HistoryForward records a pending push.
func (b *Base) HistoryForward() {
	b.Push("")
}

// NormalizePath decodes path and makes it start with "/".
func (b *Base) NormalizePath(path string) string {
	if strings.HasPrefix(path, "/") {
		return decodeURI(path)
	}
	return "/" + decodeURI(path)
}

// EnsureSlash replaces the current path with "/"+path when it lacks the
// leading slash. It returns false when a correction was issued.
func (b *Base) EnsureSlash() bool {
	a := b.bound()

	path := a.Current()
	if strings.HasPrefix(path, "/") {
		return true
	}

	a.Replace("/" + path)

	return false
}

// OnChange handles a change observed in the environment. A path without
// leading slash is corrected first and nothing is notified, the
// correction produces its own change. Otherwise the pending action is
// consumed and listeners are notified, with ActionPop when no action was
// pending.
func (b *Base) OnChange() {
	if !b.EnsureSlash() {
		return
	}

	action := b.action
	b.action = ActionNone

	if action == ActionNone {
		action = ActionPop
	}

	b.NotifyChange(action)
}

// NotifyChange delivers the current path and typ to every listener in
// registration order.
func (b *Base) NotifyChange(typ Action) {
	change := Change{
		Path: b.bound().Current(),
		Type: typ,
	}

	listeners := make([]*Listener, len(b.listeners))
	copy(listeners, b.listeners)

	for _, l := range listeners {
		l.Notify(change)
	}
}

// AddChangeListener appends l and ensures the current path is valid.
func (b *Base) AddChangeListener(l *Listener) {
	b.listeners = append(b.listeners, l)

	// Before the adapter starts observing its environment.
	b.EnsureSlash()
}

// RemoveChangeListener removes every registration of l.
func (b *Base) RemoveChangeListener(l *Listener) {
	kept := b.listeners[:0]
	for _, fn := range b.listeners {
		if fn != l {
			kept = append(kept, fn)
		}
	}
	for i := len(kept); i < len(b.listeners); i++ {
		b.listeners[i] = nil
	}
	b.listeners = kept
}

// Listeners returns the number of registered listeners.
func (b *Base) Listeners() int {
	return len(b.listeners)
}
