package pull

import (
	"weak"

	mapset "github.com/deckarep/golang-set/v2"
)

type state uint8

const (
	stateDirty          state = iota // cached value may be stale, must recompute on next pull
	stateCleanSame                   // recomputed, value equal to the previous one
	stateCleanDifferent              // recomputed, value changed
)

// node is the non-generic core shared by writeable and readonly signals.
// Weak reader handles point at it, so an input never keeps a derivation
// alive just by knowing about it.
type node struct {
	id      uint64
	name    string
	state   state
	version uint64
	self    weak.Pointer[node]

	// inputs holds the transitive input leaves consumed by the latest
	// run. An input lists itself.
	inputs mapset.Set[*node]

	// readers is only populated on inputs: weak handles to every node
	// whose current inputs set contains this leaf.
	readers mapset.Set[weak.Pointer[node]]
}

// markReadersDirty flips every live subscribed reader to dirty and purges
// handles whose referent has been collected.
func (n *node) markReadersDirty() {
	var dead []weak.Pointer[node]
	n.readers.Each(func(w weak.Pointer[node]) bool {
		if r := w.Value(); r != nil {
			r.state = stateDirty
		} else {
			dead = append(dead, w)
		}
		return false
	})
	for _, w := range dead {
		n.readers.Remove(w)
	}
}

type SignalAware interface {
	isSignalAware()
	ID() uint64
	Name() string
}

// dependency is the untyped view a derivation keeps of its direct sources.
type dependency interface {
	SignalAware
	pull()
	base() *node
}

// Source is any readable node in the graph: an input or a derivation.
type Source[T comparable] interface {
	dependency
	Value() T
	peek() T
}
