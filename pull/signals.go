package pull

import (
	"weak"

	mapset "github.com/deckarep/golang-set/v2"
)

// WriteableSignal is a mutable leaf of the graph.
type WriteableSignal[T comparable] struct {
	rs    *ReactiveSystem
	n     *node
	value T
	eq    func(a, b T) bool
}

func (s *WriteableSignal[T]) isSignalAware() {}
func (s *WriteableSignal[T]) ID() uint64     { return s.n.id }
func (s *WriteableSignal[T]) Name() string   { return s.n.name }
func (s *WriteableSignal[T]) base() *node    { return s.n }
func (s *WriteableSignal[T]) pull()          {}
func (s *WriteableSignal[T]) peek() T        { return s.value }

func (s *WriteableSignal[T]) Value() T {
	if s.rs.nonReactive() {
		s.rs.fail(s, ErrNonReactiveAccess)
	}
	return s.value
}

// SetValue stores a new value. Equal writes are no-ops. Unequal writes
// mark every subscribed reader dirty before returning; staleness past the
// readers propagates lazily on their next pull.
func (s *WriteableSignal[T]) SetValue(v T) {
	if s.rs.nonReactive() {
		s.rs.fail(s, ErrNonReactiveAccess)
	}
	if s.eq(s.value, v) {
		return
	}
	s.value = v
	s.n.version++
	s.n.state = stateCleanDifferent
	s.n.markReadersDirty()
}

func Signal[T comparable](rs *ReactiveSystem, initialValue T, opts ...SignalOption[T]) *WriteableSignal[T] {
	cfg := buildConfig(opts)
	n := rs.newNode(cfg.name)
	n.version = 1
	n.state = stateCleanSame
	n.inputs = mapset.NewThreadUnsafeSet(n)
	n.readers = mapset.NewThreadUnsafeSet[weak.Pointer[node]]()
	return &WriteableSignal[T]{
		rs:    rs,
		n:     n,
		value: initialValue,
		eq:    cfg.eq,
	}
}
