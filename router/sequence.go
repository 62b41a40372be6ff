package router

import "sync/atomic"

// Sequence hands out monotonically increasing identities. Routers and the
// routes registered on them draw their IDs from the router's Sequence; a
// Sequence shared between routers keeps IDs unique across them.
type Sequence struct {
	next atomic.Int64
}

// NewSequence returns a Sequence whose first value is start.
func NewSequence(start int64) *Sequence {
	s := &Sequence{}
	s.next.Store(start)
	return s
}

// Next returns the next identity.
func (s *Sequence) Next() int64 {
	return s.next.Add(1) - 1
}

// Peek returns the identity the next call to Next will return.
func (s *Sequence) Peek() int64 {
	return s.next.Load()
}
