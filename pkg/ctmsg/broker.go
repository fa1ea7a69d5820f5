package ctmsg

import "sync"

// MessageHandler receives messages published on a MessageBroker.
type MessageHandler func(Message)

// MessageBroker fans messages out to registered handlers. Handlers run
// synchronously on the goroutine that publishes, in registration order.
type MessageBroker struct {
	mu       sync.RWMutex
	nextID   uint64
	handlers []registration
}

type registration struct {
	id uint64
	fn MessageHandler
}

var (
	// GlobalServerMessageBroker receives the server messages of every
	// Library opened without WithServerBroker.
	GlobalServerMessageBroker = NewMessageBroker()

	// GlobalClientMessageBroker receives the client messages of every
	// Library opened without WithClientBroker.
	GlobalClientMessageBroker = NewMessageBroker()
)

// NewMessageBroker returns an empty broker.
func NewMessageBroker() *MessageBroker {
	return &MessageBroker{}
}

// RegisterHandler adds h and returns a function removing it again. The
// returned function is safe to call more than once. A nil h is ignored.
func (b *MessageBroker) RegisterHandler(h MessageHandler) (deregister func()) {
	if h == nil {
		return func() {}
	}

	b.mu.Lock()
	b.nextID++
	id := b.nextID
	b.handlers = append(b.handlers, registration{id: id, fn: h})
	b.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { b.deregister(id) })
	}
}

func (b *MessageBroker) deregister(id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i, r := range b.handlers {
		if r.id == id {
			b.handlers = append(b.handlers[:i:i], b.handlers[i+1:]...)
			return
		}
	}
}

// DeregisterAll removes every handler.
func (b *MessageBroker) DeregisterAll() {
	b.mu.Lock()
	b.handlers = nil
	b.mu.Unlock()
}

// Len returns the number of registered handlers.
func (b *MessageBroker) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.handlers)
}

// Publish passes msg to every handler registered at the time of the call.
// Handlers may register or deregister handlers themselves; the change applies
// from the next Publish on.
func (b *MessageBroker) Publish(msg Message) {
	b.mu.RLock()
	snapshot := make([]MessageHandler, len(b.handlers))
	for i, r := range b.handlers {
		snapshot[i] = r.fn
	}
	b.mu.RUnlock()

	for _, h := range snapshot {
		h(msg)
	}
}
