//go:build cgo && !ctlib && !windows

package bindings

// errUnavailable is returned by the stubs in cgo-enabled builds that were not
// compiled with the ctlib tag.
var errUnavailable = ErrNotBuilt
