package ctmsg

import "sync"

// MessageRecorder keeps every message it is handed. Register HandleMessage
// on a broker to capture what the server says during a call.
type MessageRecorder struct {
	mu       sync.Mutex
	messages []Message
}

// NewMessageRecorder returns an empty recorder.
func NewMessageRecorder() *MessageRecorder {
	return &MessageRecorder{}
}

// HandleMessage implements MessageHandler.
func (rec *MessageRecorder) HandleMessage(msg Message) {
	rec.mu.Lock()
	defer rec.mu.Unlock()

	rec.messages = append(rec.messages, msg)
}

// Messages returns a copy of the recorded messages.
func (rec *MessageRecorder) Messages() []Message {
	rec.mu.Lock()
	defer rec.mu.Unlock()

	out := make([]Message, len(rec.messages))
	copy(out, rec.messages)
	return out
}

// Text returns the content of each recorded message followed by a newline.
func (rec *MessageRecorder) Text() []string {
	rec.mu.Lock()
	defer rec.mu.Unlock()

	lines := make([]string, len(rec.messages))
	for i, msg := range rec.messages {
		lines[i] = msg.Content() + "\n"
	}
	return lines
}

// Len returns the number of recorded messages.
func (rec *MessageRecorder) Len() int {
	rec.mu.Lock()
	defer rec.mu.Unlock()
	return len(rec.messages)
}

// Reset drops all recorded messages.
func (rec *MessageRecorder) Reset() {
	rec.mu.Lock()
	defer rec.mu.Unlock()

	rec.messages = nil
}
