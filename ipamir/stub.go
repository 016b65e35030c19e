//go:build !cgo
// +build !cgo

// Package ipamir provides a Go binding to the IPAMIR C interface for
// incremental weighted partial MaxSAT solvers.
// This stub allows the package to build without cgo available.
// Install an IPAMIR solver library and enable cgo to use the real binding.
package ipamir

// Placeholder types for documentation-only builds (no functionality).

type Solver struct{}

type Solution struct{}

type Result struct{}

type Status int

const (
	TimeoutNoModel   Status = 0
	TimeoutWithModel Status = 10
	Unsat            Status = 20
	Optimal          Status = 30
	EngineError      Status = 40
)

type LitValue int

const (
	LitUnknown LitValue = iota
	LitTrue
	LitFalse
)
