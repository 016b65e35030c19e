//go:build cgo
// +build cgo

package ipamir

import "C"

import (
	"runtime/cgo"
	"time"
	"unsafe"
)

// solveDeadline is the state shared with the engine's terminate callback
// for the duration of one Solve call. The expiry is precomputed so the
// callback itself does a single clock read and comparison.
type solveDeadline struct {
	expiry time.Time
}

// goSolveTerminate is polled by the engine, possibly re-entrantly on the
// goroutine blocked in ipamir_solve. It must stay cheap and must not
// block; returning nonzero asks the engine to stop.
//
//export goSolveTerminate
func goSolveTerminate(data unsafe.Pointer) C.int {
	d := cgo.Handle(uintptr(data)).Value().(*solveDeadline)
	if time.Now().After(d.expiry) {
		return 1
	}
	return 0
}
