package pull

import (
	"errors"
	"weak"
)

// ErrNonReactiveAccess is raised when a derivation body reads or writes a
// signal directly instead of receiving it through its declared sources.
var ErrNonReactiveAccess = errors.New("non-reactive access inside a derivation body")

type OnErrorFunc func(from SignalAware, err error)

// ReactiveSystem owns the per-graph state: the id counter and the
// reentrancy guard. All operations on its signals are single-task.
type ReactiveSystem struct {
	nextID    uint64
	computing bool
	guardOff  bool
	onError   OnErrorFunc
}

func CreateReactiveSystem(onError OnErrorFunc) *ReactiveSystem {
	return &ReactiveSystem{onError: onError}
}

// SetGuardDisabled turns the reentrancy guard off. Diagnostics only;
// reads performed while disabled are not tracked as dependencies.
func (rs *ReactiveSystem) SetGuardDisabled(disabled bool) {
	rs.guardOff = disabled
}

func (rs *ReactiveSystem) newNode(name string) *node {
	rs.nextID++
	n := &node{id: rs.nextID, name: name}
	n.self = weak.Make(n)
	return n
}

func (rs *ReactiveSystem) nonReactive() bool {
	return rs.computing && !rs.guardOff
}

// fail resets the guard before the error surfaces so the graph stays
// usable, notifies the system's error func, then aborts the pull.
func (rs *ReactiveSystem) fail(from SignalAware, err error) {
	rs.computing = false
	if rs.onError != nil {
		rs.onError(from, err)
	}
	panic(err)
}
