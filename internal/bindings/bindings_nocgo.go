//go:build !cgo || windows

package bindings

var errUnavailable = ErrCGONotEnabled
