package pull_test

import (
	"runtime"
	"testing"

	"github.com/delaneyj/pullparty/pull"
	"github.com/stretchr/testify/assert"
)

func TestDeadReadersAreTolerated(t *testing.T) {
	// Inputs only hold weak handles to their readers, so dropping the last
	// strong reference to a derivation must not wedge the input.
	rs := newTestSystem(t)
	a := pull.Signal(rs, 1)

	func() {
		d := pull.Computed1(rs, a, func(v int) int { return v + 1 })
		assert.Equal(t, 2, d.Value())
	}()

	runtime.GC()

	// writes iterate the reader set; expired handles are skipped
	a.SetValue(5)
	a.SetValue(9)
	assert.Equal(t, 9, a.Value())

	// and the input still serves new readers
	e := pull.Computed1(rs, a, func(v int) int { return v * 10 })
	assert.Equal(t, 90, e.Value())
	a.SetValue(10)
	assert.Equal(t, 100, e.Value())
}

func TestManyDroppedReaders(t *testing.T) {
	rs := newTestSystem(t)
	a := pull.Signal(rs, 1)

	for i := 0; i < 100; i++ {
		d := pull.Computed1(rs, a, func(v int) int { return v + i })
		d.Value()
	}
	runtime.GC()

	// the write survives whatever mix of live and dead handles remains
	a.SetValue(2)
	assert.Equal(t, 2, a.Value())
}
