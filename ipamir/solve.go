//go:build cgo
// +build cgo

package ipamir

/*
#include <stddef.h>
#include <stdint.h>

void ipamir_assume(void *solver, int32_t lit);
int ipamir_solve(void *solver);
void ipamir_set_terminate(void *solver, void *data, int (*terminate)(void *data));

extern int goSolveTerminate(void *data);

static void ipamir_arm_terminate(void *solver, uintptr_t data) {
	ipamir_set_terminate(solver, (void *)data, goSolveTerminate);
}
static void ipamir_clear_terminate(void *solver) {
	ipamir_set_terminate(solver, NULL, NULL);
}
*/
import "C"

import (
	"fmt"
	"runtime/cgo"
	"time"
)

// Status identifies the outcome of one Solve call. The values are the
// solve status codes of the IPAMIR interface.
type Status int

const (
	// TimeoutNoModel means the engine stopped early, before finding any
	// solution.
	TimeoutNoModel Status = 0
	// TimeoutWithModel means the engine stopped early but had already
	// found a (not necessarily optimal) solution.
	TimeoutWithModel Status = 10
	// Unsat means the hard clauses were proven unsatisfiable under the
	// given assumptions.
	Unsat Status = 20
	// Optimal means the engine found a solution and proved it
	// cost-minimal.
	Optimal Status = 30
	// EngineError means the engine reported an internal error for this
	// solve call.
	EngineError Status = 40
)

func (st Status) String() string {
	switch st {
	case TimeoutNoModel:
		return "timeout"
	case TimeoutWithModel:
		return "timeout-with-model"
	case Unsat:
		return "unsat"
	case Optimal:
		return "optimal"
	case EngineError:
		return "error"
	default:
		return fmt.Sprintf("Status(%d)", int(st))
	}
}

// Result captures the outcome of one Solve call. Exactly the statuses
// TimeoutWithModel and Optimal carry a Solution view.
type Result struct {
	status Status
	sol    *Solution
}

// Status returns the outcome class of the solve call.
func (r Result) Status() Status { return r.status }

// Solution returns the view onto the found assignment and true when the
// result carries one, or nil and false for TimeoutNoModel, Unsat and
// EngineError results. The view reads the engine directly and is only
// valid until the next mutating call on the owning solver.
func (r Result) Solution() (*Solution, bool) {
	return r.sol, r.sol != nil
}

// Solve runs the engine on the current formula under the given
// assumptions and returns the outcome. The call blocks until the engine
// returns; there is no asynchronous variant.
//
// A timeout greater than zero arms a cooperative cancellation callback:
// once the duration has elapsed the engine is asked to stop at its next
// poll. The mechanism is advisory, so the engine may still return
// Optimal or Unsat after the deadline, and it may overrun the deadline
// by up to one polling interval. A timeout of zero (or negative)
// disables cancellation entirely and the callback is never registered.
//
// Assumptions hold for this call only; they are consumed by the engine
// and leave the formula untouched.
func (s *Solver) Solve(timeout time.Duration, assumptions ...int32) Result {
	for _, lit := range assumptions {
		C.ipamir_assume(s.p, C.int32_t(lit))
	}

	armed := timeout > 0
	var h cgo.Handle
	if armed {
		h = cgo.NewHandle(&solveDeadline{expiry: time.Now().Add(timeout)})
		C.ipamir_arm_terminate(s.p, C.uintptr_t(h))
	}
	// The callback and its state must be gone before Solve returns:
	// the engine must never hold a pointer into a finished call.
	defer func() {
		C.ipamir_clear_terminate(s.p)
		if armed {
			h.Delete()
		}
	}()

	code := int(C.ipamir_solve(s.p))
	s.gen++
	return s.resultFromStatus(code)
}

// resultFromStatus maps an engine solve status onto a Result. Statuses
// outside the fixed IPAMIR set indicate a broken engine or binding and
// are never coerced into a known outcome.
func (s *Solver) resultFromStatus(code int) Result {
	switch Status(code) {
	case TimeoutNoModel, Unsat, EngineError:
		return Result{status: Status(code)}
	case TimeoutWithModel, Optimal:
		return Result{status: Status(code), sol: &Solution{s: s, gen: s.gen}}
	default:
		panic(fmt.Sprintf("ipamir: unrecognized status %d from ipamir_solve", code))
	}
}
