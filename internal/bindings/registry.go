package bindings

import (
	"sync"
	"unsafe"
)

type nativeContext struct {
	ptr    unsafe.Pointer
	exited bool
}

// registry maps handles to CS_CONTEXT pointers opened by Open.
type registry struct {
	mu   sync.Mutex
	next Handle
	ctxs map[Handle]*nativeContext
}

func newRegistry() *registry {
	return &registry{next: 1, ctxs: map[Handle]*nativeContext{}}
}

func (r *registry) put(ptr unsafe.Pointer) Handle {
	r.mu.Lock()
	defer r.mu.Unlock()

	h := r.next
	r.next++
	r.ctxs[h] = &nativeContext{ptr: ptr}
	return h
}

// get returns the context of h unless it was closed or has already exited.
func (r *registry) get(h Handle) (unsafe.Pointer, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.ctxs[h]
	if !ok || c.exited {
		return nil, false
	}
	return c.ptr, true
}

// close runs exit at most once per context and drop until it succeeds. The
// handle is released only after drop succeeded, so a failed drop can be
// retried without exiting twice.
func (r *registry) close(h Handle, exit, drop func(unsafe.Pointer) int32) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.ctxs[h]
	if !ok {
		return ErrUnknownHandle
	}
	if !c.exited {
		if rc := exit(c.ptr); rc != csSucceed {
			return &CodeError{Op: "ct_exit", Code: rc}
		}
		c.exited = true
	}
	if rc := drop(c.ptr); rc != csSucceed {
		return &CodeError{Op: "cs_ctx_drop", Code: rc}
	}
	delete(r.ctxs, h)
	return nil
}
