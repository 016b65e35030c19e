//go:build cgo
// +build cgo

package ipamir

/*
// You can set CGO_CFLAGS and CGO_LDFLAGS at build time to point to your
// IPAMIR solver build. This file intentionally provides no defaults to
// avoid hard-coding local paths.
*/
import "C"
