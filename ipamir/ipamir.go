//go:build cgo
// +build cgo

// Package ipamir provides a Go binding to the IPAMIR C interface for
// incremental weighted partial MaxSAT solvers. The binding wraps one
// opaque solver instance per Solver value and routes every engine call
// through it: hard clauses and weighted soft literals accumulate across
// calls, assumptions are staged per Solve, and solutions are queried
// through a read-only view tied to the solve that produced them.
package ipamir

/*
// IPAMIR entry points, resolved from the linked solver library (linker
// flags are provided via separate build-tagged files).
#include <stdint.h>

const char *ipamir_signature(void);
void *ipamir_init(void);
void ipamir_release(void *solver);
void ipamir_add_hard(void *solver, int32_t lit_or_zero);
void ipamir_add_soft_lit(void *solver, int32_t lit, uint64_t weight);
*/
import "C"

import (
	"runtime"
	"unsafe"
)

// Solver wraps one IPAMIR solver instance and provides a Go-friendly API
// for building and solving incremental weighted MaxSAT problems.
//
// A Solver is not safe for concurrent use: at most one goroutine may
// touch it at a time, and in particular no other call may run while
// Solve blocks inside the engine. Callers needing concurrency must
// serialize access externally.
type Solver struct {
	p unsafe.Pointer
	// gen counts mutating calls. Solution views record the value at
	// creation and refuse to read the engine once it moves on.
	gen uint64
}

// Signature returns the name and version string advertised by the linked
// solver library. The text is copied into an owned Go string; the C
// buffer's lifetime is not relied on past this call.
func Signature() string {
	return C.GoString(C.ipamir_signature())
}

// New creates a fresh solver instance, ready to have clauses and soft
// literals added to it. The returned solver automatically tracks a Go
// finalizer so leaked solver handles are still released when the GC
// runs. New panics if the engine cannot be constructed; there is no
// degraded mode to fall back to.
func New() *Solver {
	p := C.ipamir_init()
	if p == nil {
		panic("ipamir: ipamir_init returned NULL; the solver library could not construct an instance")
	}
	s := &Solver{p: p}
	runtime.SetFinalizer(s, func(x *Solver) { x.Close() })
	return s
}

// Close releases the underlying solver instance. Repeated calls are safe
// and become no-ops once the handle has been cleared; the engine sees
// exactly one release. After Close returns the solver must not be used,
// and any outstanding Solution views are invalidated.
func (s *Solver) Close() {
	if s != nil && s.p != nil {
		C.ipamir_release(s.p)
		s.p = nil
		s.gen++
	}
}

// AddClause appends one hard clause, given as its literals, to the
// formula. Literals are forwarded in the order supplied, followed by the
// terminating zero of the wire protocol. Because zero terminates a
// clause at the engine level, callers must not pass a zero literal; the
// input is forwarded as-is, not scanned.
func (s *Solver) AddClause(lits ...int32) {
	for _, lit := range lits {
		C.ipamir_add_hard(s.p, C.int32_t(lit))
	}
	C.ipamir_add_hard(s.p, 0)
	s.gen++
}

// AddClauses appends a list (as a slice) of hard clauses (the
// sub-slices). Equivalent to calling AddClause once per sub-slice.
func (s *Solver) AddClauses(clauses [][]int32) {
	for _, clause := range clauses {
		s.AddClause(clause...)
	}
}

// AddSoftLiteral declares lit as a soft literal with the given weight:
// every solution in which lit is false incurs weight as cost, and the
// engine minimizes the total incurred cost. Declaring the same literal
// again follows the engine's own semantics; this layer does not dedup.
func (s *Solver) AddSoftLiteral(lit int32, weight uint64) {
	C.ipamir_add_soft_lit(s.p, C.int32_t(lit), C.uint64_t(weight))
	s.gen++
}
