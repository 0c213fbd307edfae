package pull

// Bind1 is the signal-returning form of Computed1. The body picks a
// signal; the engine reads through it and caches the raw value, so a
// signal of a signal cannot be constructed. Returning a different signal
// than last run rewires the transitive inputs, which is how conditional
// branches attach and detach.
func Bind1[T0, O comparable](
	rs *ReactiveSystem,
	s0 Source[T0],
	f func(T0) Source[O],
	opts ...SignalOption[O],
) *ReadonlySignal[O] {
	c := newReadonly(rs, opts, s0)
	c.bind = func() Source[O] {
		return f(s0.peek())
	}
	return c
}
