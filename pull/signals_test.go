package pull_test

import (
	"strings"
	"testing"

	"github.com/delaneyj/pullparty/pull"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSystem(t *testing.T) *pull.ReactiveSystem {
	t.Helper()
	return pull.CreateReactiveSystem(func(from pull.SignalAware, err error) {
		t.Logf("signal %d (%s): %v", from.ID(), from.Name(), err)
	})
}

func identity[T comparable](v T) T {
	return v
}

func doubleCount(c int) int {
	return c * 2
}

func sumTwo(a, b int) int {
	return a + b
}

// from README
func TestBasicUsage(t *testing.T) {
	rs := newTestSystem(t)
	count := pull.Signal(rs, 1)
	dbl := pull.Computed1(rs, count, doubleCount)

	assert.Equal(t, 2, dbl.Value())
	count.SetValue(4)
	assert.Equal(t, 8, dbl.Value())
	count.SetValue(6)
	assert.Equal(t, 12, dbl.Value())
}

func TestLazyAndCached(t *testing.T) {
	rs := newTestSystem(t)
	a := pull.Signal(rs, 1)

	callCount := 0
	c := pull.Computed1(rs, a, func(v int) int {
		callCount++
		return v
	})

	// construction alone never runs the body
	assert.Equal(t, 0, callCount)

	assert.Equal(t, 1, c.Value())
	assert.Equal(t, 1, callCount)

	// no writes in between, the cache answers
	assert.Equal(t, 1, c.Value())
	assert.Equal(t, 1, callCount)
}

func TestEqualWriteIsNoOp(t *testing.T) {
	rs := newTestSystem(t)
	a := pull.Signal(rs, 1)

	callCount := 0
	c := pull.Computed1(rs, a, func(v int) int {
		callCount++
		return v
	})

	c.Value()
	assert.Equal(t, 1, callCount)

	a.SetValue(1) // same value, nobody gets dirtied
	c.Value()
	assert.Equal(t, 1, callCount)

	a.SetValue(2)
	a.SetValue(2) // second write is a no-op
	assert.Equal(t, 2, c.Value())
	assert.Equal(t, 2, callCount)
}

func TestCustomEquality(t *testing.T) {
	rs := newTestSystem(t)
	a := pull.Signal(rs, "go", pull.WithEquality[string](strings.EqualFold))

	callCount := 0
	c := pull.Computed1(rs, a, func(v string) string {
		callCount++
		return v
	})

	assert.Equal(t, "go", c.Value())
	assert.Equal(t, 1, callCount)

	a.SetValue("GO") // equal under the custom comparator
	assert.Equal(t, "go", c.Value())
	assert.Equal(t, 1, callCount)

	a.SetValue("gopher")
	assert.Equal(t, "gopher", c.Value())
	assert.Equal(t, 2, callCount)
}

func TestNamesAndIDs(t *testing.T) {
	rs := newTestSystem(t)
	a := pull.Signal(rs, 1, pull.WithName[int]("a"))
	b := pull.Signal(rs, 2)
	c := pull.Computed2(rs, a, b, sumTwo, pull.WithName[int]("sum"))

	assert.Equal(t, "a", a.Name())
	assert.Empty(t, b.Name())
	assert.Equal(t, "sum", c.Name())

	// ids are unique and monotonic per system
	require.Less(t, a.ID(), b.ID())
	require.Less(t, b.ID(), c.ID())
}
