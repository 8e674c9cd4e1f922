// Package screen holds the state behind each app screen. Every screen
// refetches wholesale after a mutation instead of patching its local copy,
// and drops refresh results that a newer refresh has overtaken.
package screen

import "sync/atomic"

// Guard orders overlapping refreshes. Begin hands out a ticket; Current
// reports whether no refresh has begun since that ticket was issued.
type Guard struct {
	n atomic.Uint64
}

func (g *Guard) Begin() uint64 {
	return g.n.Add(1)
}

func (g *Guard) Current(ticket uint64) bool {
	return g.n.Load() == ticket
}
