//go:build cgo && linux
// +build cgo,linux

package ipamir

/*
// Default linker flag to pull in the IPAMIR solver library. On Linux the
// library is expected in a default linker path; if not, callers can
// provide CGO_LDFLAGS/CGO_CFLAGS instead.
#cgo LDFLAGS: -lipamir
*/
import "C"
