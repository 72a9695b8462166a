// Package spy provides an instrumented element type for exercising
// container copy and teardown paths: every live copy is counted, and
// an optional copy budget makes the Nth clone fail on demand.
package spy

import (
	"github.com/pkg/errors"
	"go.uber.org/atomic"

	"github.com/snwfog/forward.go/forward"
)

// ErrBudgetExhausted is returned by Clone once the copy budget is
// drained.
var ErrBudgetExhausted = errors.New("spy: copy budget exhausted")

// Value is one instrumented element. Clone registers a new live copy
// against the shared counter, Release unregisters one; a balanced
// container brings the counter back to where it started.
type Value struct {
	ID     int
	live   *atomic.Int64
	budget *atomic.Int64
}

// New registers a live instance against the counter and returns it.
func New(id int, live *atomic.Int64) Value {
	live.Inc()
	return Value{ID: id, live: live}
}

// NewBudget is New with a copy budget: each Clone consumes one unit
// and fails with ErrBudgetExhausted once the budget goes negative.
func NewBudget(id int, live, budget *atomic.Int64) Value {
	live.Inc()
	return Value{ID: id, live: live, budget: budget}
}

// Clone produces a new live copy, or fails when the budget is drained.
func (v Value) Clone() (Value, error) {
	if v.budget != nil && v.budget.Dec() < 0 {
		return Value{}, ErrBudgetExhausted
	}
	if v.live != nil {
		v.live.Inc()
	}
	return v, nil
}

// Release unregisters one live copy.
func (v Value) Release() {
	if v.live != nil {
		v.live.Dec()
	}
}

// Hooks wires the spy lifecycle into a list.
func Hooks() forward.Hooks[Value] {
	return forward.Hooks[Value]{
		Clone:   Value.Clone,
		Release: Value.Release,
	}
}
