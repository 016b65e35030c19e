//go:build cgo
// +build cgo

package ipamir

/*
#include <stdint.h>

uint64_t ipamir_val_obj(void *solver);
int32_t ipamir_val_lit(void *solver, int32_t lit);
*/
import "C"

import "fmt"

// LitValue is the tri-state value of a literal in a found assignment.
type LitValue int

const (
	// LitUnknown means the assignment does not constrain the literal
	// (don't-care).
	LitUnknown LitValue = iota
	// LitTrue means the literal holds in the assignment.
	LitTrue
	// LitFalse means the literal is falsified by the assignment.
	LitFalse
)

func (v LitValue) String() string {
	switch v {
	case LitTrue:
		return "true"
	case LitFalse:
		return "false"
	case LitUnknown:
		return "unknown"
	default:
		return fmt.Sprintf("LitValue(%d)", int(v))
	}
}

// Solution is a read-only view onto the assignment found by one Solve
// call. It borrows the solver's current state rather than copying it, so
// it is valid only until the next mutating call (AddClause,
// AddSoftLiteral, Solve, Close) on the owning solver; accessing a stale
// view panics. Solutions are only produced by Solve.
type Solution struct {
	s   *Solver
	gen uint64
}

// checkCurrent panics unless the owning solver is live and has not been
// mutated since this view was produced.
func (sol *Solution) checkCurrent() {
	if sol.s == nil || sol.s.p == nil {
		panic("ipamir: solution queried after its solver was closed")
	}
	if sol.gen != sol.s.gen {
		panic("ipamir: solution queried after the solver was mutated; solve again for a fresh view")
	}
}

// ObjectiveValue returns the cost of the found assignment: the sum of
// the weights of all falsified soft literals.
func (sol *Solution) ObjectiveValue() uint64 {
	sol.checkCurrent()
	return uint64(C.ipamir_val_obj(sol.s.p))
}

// LiteralValue reports the tri-state value of lit in the found
// assignment. lit must be a non-zero literal; negating it flips the
// answer between LitTrue and LitFalse.
func (sol *Solution) LiteralValue(lit int32) LitValue {
	sol.checkCurrent()
	v := int32(C.ipamir_val_lit(sol.s.p, C.int32_t(lit)))
	switch v {
	case lit:
		return LitTrue
	case -lit:
		return LitFalse
	case 0:
		return LitUnknown
	default:
		panic(fmt.Sprintf("ipamir: ipamir_val_lit(%d) returned %d, outside the tri-state contract", lit, v))
	}
}
