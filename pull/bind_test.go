package pull_test

import (
	"testing"

	"github.com/delaneyj/pullparty/pull"
	"github.com/stretchr/testify/assert"
)

func TestBindReturnsInput(t *testing.T) {
	// The body picks one of two inputs; the consumer always sees the raw
	// value, never a signal.
	rs := newTestSystem(t)
	a := pull.Signal(rs, 1)
	b := pull.Signal(rs, 2)
	c := pull.Signal(rs, false)

	res := pull.Bind3(rs, a, b, c, func(av, bv int, cv bool) pull.Source[int] {
		if cv {
			return a
		}
		return b
	})

	assert.Equal(t, 2, res.Value())
	c.SetValue(true)
	assert.Equal(t, 1, res.Value())
}

func TestBindFollowsInnerWrites(t *testing.T) {
	rs := newTestSystem(t)
	which := pull.Signal(rs, true)
	x := pull.Signal(rs, 10)

	bindCount := 0
	res := pull.Bind1(rs, which, func(bool) pull.Source[int] {
		bindCount++
		return x
	})

	assert.Equal(t, 10, res.Value())
	assert.Equal(t, 1, bindCount)

	// which is untouched, so the body must not re-run; the inner signal
	// still carries the new value through
	x.SetValue(20)
	assert.Equal(t, 20, res.Value())
	assert.Equal(t, 1, bindCount)
}

func TestConditionalBranchDetachment(t *testing.T) {
	//        b
	//        │
	//        z ──► x-branch   (y-branch detached)
	rs := newTestSystem(t)
	x := pull.Signal(rs, "x")
	y := pull.Signal(rs, "y")
	b := pull.Signal(rs, true)

	xReads, yReads := 0, 0
	z := pull.Bind1(rs, b, func(bv bool) pull.Source[string] {
		if bv {
			return pull.Computed1(rs, x, func(v string) string {
				xReads++
				return v
			})
		}
		return pull.Computed1(rs, y, func(v string) string {
			yReads++
			return v
		})
	})

	assert.Equal(t, "x", z.Value())
	assert.Equal(t, 1, xReads)
	assert.Equal(t, 0, yReads)

	// writes on the branch not taken change nothing
	y.SetValue("y2")
	assert.Equal(t, "x", z.Value())
	assert.Equal(t, 1, xReads)
	assert.Equal(t, 0, yReads)

	x.SetValue("x2")
	assert.Equal(t, "x2", z.Value())
	assert.Equal(t, 2, xReads)

	// flipping the condition rewires the graph to the y branch
	b.SetValue(false)
	assert.Equal(t, "y2", z.Value())
	assert.Equal(t, 1, yReads)

	// the x branch is now detached
	x.SetValue("x3")
	assert.Equal(t, "y2", z.Value())
	assert.Equal(t, 2, xReads)
	assert.Equal(t, 1, yReads)
}

func TestBindSameSignalEveryRun(t *testing.T) {
	rs := newTestSystem(t)
	sel := pull.Signal(rs, 0)
	x := pull.Signal(rs, 7)
	inner := pull.Computed1(rs, x, doubleCount)

	res := pull.Bind1(rs, sel, func(int) pull.Source[int] {
		return inner
	})

	assert.Equal(t, 14, res.Value())
	sel.SetValue(1)
	// body re-runs, returns the same signal object, the inner cache answers
	assert.Equal(t, 14, res.Value())
	x.SetValue(8)
	assert.Equal(t, 16, res.Value())
}

func TestBindEqualityShortCircuitsDownstream(t *testing.T) {
	rs := newTestSystem(t)
	sel := pull.Signal(rs, true)
	x := pull.Signal(rs, 1)
	y := pull.Signal(rs, 1)

	picked := pull.Bind1(rs, sel, func(bv bool) pull.Source[int] {
		if bv {
			return x
		}
		return y
	})

	callCount := 0
	downstream := pull.Computed1(rs, picked, func(v int) int {
		callCount++
		return v
	})

	assert.Equal(t, 1, downstream.Value())
	assert.Equal(t, 1, callCount)

	// switching to a branch with an equal value is not a change
	sel.SetValue(false)
	assert.Equal(t, 1, downstream.Value())
	assert.Equal(t, 1, callCount)

	y.SetValue(9)
	assert.Equal(t, 9, downstream.Value())
	assert.Equal(t, 2, callCount)
}
