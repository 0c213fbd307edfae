package pull

import (
	mapset "github.com/deckarep/golang-set/v2"
)

// ReadonlySignal is a derivation: a node whose value is computed on demand
// from one or more source signals. It starts dirty; the body never runs at
// construction.
//
// Exactly one of body and bind is set. A body returns a raw value. A bind
// returns another signal, which the engine reads through so the cached
// result is always a raw value.
type ReadonlySignal[O comparable] struct {
	rs      *ReactiveSystem
	n       *node
	sources []dependency
	// seen holds, per direct source, the version observed by the last
	// successful run. Matching versions across the board mean nothing
	// this node reads has changed.
	seen []uint64

	body func() O
	bind func() Source[O]

	// inner is the signal returned by the last bind run, kept so an
	// unchanged-sources pull can still pick up movement inside it.
	inner     Source[O]
	innerSeen uint64

	value  O
	eq     func(a, b O) bool
	hasRun bool
}

func (s *ReadonlySignal[O]) isSignalAware() {}
func (s *ReadonlySignal[O]) ID() uint64     { return s.n.id }
func (s *ReadonlySignal[O]) Name() string   { return s.n.name }
func (s *ReadonlySignal[O]) base() *node    { return s.n }
func (s *ReadonlySignal[O]) peek() O        { return s.value }

func (s *ReadonlySignal[O]) Value() O {
	if s.rs.nonReactive() {
		s.rs.fail(s, ErrNonReactiveAccess)
	}
	s.pull()
	return s.value
}

// pull brings the node clean. Staleness bubbles up on demand: each source
// is pulled recursively before this node decides whether its own body has
// to run at all.
func (s *ReadonlySignal[O]) pull() {
	if s.n.state != stateDirty {
		return
	}

	// The set of consumed leaves can change during this run, so old
	// subscriptions are dropped before re-evaluating.
	s.unsubscribe()

	newInputs := mapset.NewThreadUnsafeSet[*node]()
	same := s.hasRun
	for i, src := range s.sources {
		src.pull()
		newInputs = newInputs.Union(src.base().inputs)
		if s.seen[i] != src.base().version {
			same = false
		}
	}

	if same {
		s.settle(newInputs)
		return
	}

	if s.bind != nil {
		inner := s.runBind()
		if inner == nil {
			panic("derivation returned a nil signal")
		}
		s.inner = inner
		inner.pull()
		newInputs = newInputs.Union(inner.base().inputs)
		s.innerSeen = inner.base().version
		s.commitValue(inner.peek())
	} else {
		s.commitValue(s.runBody())
	}

	for i, src := range s.sources {
		s.seen[i] = src.base().version
	}
	s.n.inputs = newInputs
	s.subscribe()
}

// settle finishes a pull whose direct sources all reported unchanged
// values: the cascade-skip. The body does not run. A bound inner signal
// can still have moved through leaves this node also subscribes to, so it
// is re-read; while the sources are unchanged the bind cannot have picked
// a different signal.
func (s *ReadonlySignal[O]) settle(newInputs mapset.Set[*node]) {
	if s.bind != nil && s.inner != nil {
		s.inner.pull()
		newInputs = newInputs.Union(s.inner.base().inputs)
		if s.innerSeen != s.inner.base().version {
			s.innerSeen = s.inner.base().version
			s.commitValue(s.inner.peek())
			s.n.inputs = newInputs
			s.subscribe()
			return
		}
	}
	s.n.state = stateCleanSame
	s.n.inputs = newInputs
	s.subscribe()
}

func (s *ReadonlySignal[O]) commitValue(v O) {
	if s.hasRun && s.eq(s.value, v) {
		s.n.state = stateCleanSame
	} else {
		s.value = v
		s.n.version++
		s.n.state = stateCleanDifferent
	}
	s.hasRun = true
}

func (s *ReadonlySignal[O]) runBody() O {
	prev := s.rs.computing
	s.rs.computing = true
	defer func() { s.rs.computing = prev }()
	return s.body()
}

func (s *ReadonlySignal[O]) runBind() Source[O] {
	prev := s.rs.computing
	s.rs.computing = true
	defer func() { s.rs.computing = prev }()
	return s.bind()
}

func (s *ReadonlySignal[O]) subscribe() {
	s.n.inputs.Each(func(leaf *node) bool {
		leaf.readers.Add(s.n.self)
		return false
	})
}

func (s *ReadonlySignal[O]) unsubscribe() {
	s.n.inputs.Each(func(leaf *node) bool {
		leaf.readers.Remove(s.n.self)
		return false
	})
}

func newReadonly[O comparable](rs *ReactiveSystem, opts []SignalOption[O], sources ...dependency) *ReadonlySignal[O] {
	cfg := buildConfig(opts)
	n := rs.newNode(cfg.name)
	n.inputs = mapset.NewThreadUnsafeSet[*node]()
	return &ReadonlySignal[O]{
		rs:      rs,
		n:       n,
		sources: sources,
		seen:    make([]uint64, len(sources)),
		eq:      cfg.eq,
	}
}

func Computed1[T0, O comparable](
	rs *ReactiveSystem,
	s0 Source[T0],
	f func(T0) O,
	opts ...SignalOption[O],
) *ReadonlySignal[O] {
	c := newReadonly(rs, opts, s0)
	c.body = func() O {
		return f(s0.peek())
	}
	return c
}
