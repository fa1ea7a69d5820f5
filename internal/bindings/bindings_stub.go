//go:build !cgo || !ctlib || windows

package bindings

// Stub implementations for builds without the native Client-Library.
// Install still works so callers can wire their entries unconditionally; the
// native callbacks are simply never raised.

func Open(Config) (Handle, error) {
	return 0, errUnavailable
}

func Close(Handle) error {
	return errUnavailable
}

func LibraryVersion(Handle) (string, error) {
	return "", errUnavailable
}

func DecodeServerRecord(rec ServerRecord) (ServerFields, error) {
	if rec.IsNil() {
		return ServerFields{}, ErrNilRecord
	}
	return ServerFields{}, errUnavailable
}

func DecodeClientRecord(rec ClientRecord) (ClientFields, error) {
	if rec.IsNil() {
		return ClientFields{}, ErrNilRecord
	}
	return ClientFields{}, errUnavailable
}
