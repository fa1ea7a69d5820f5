package ctmsg

// SkipSeverity returns a handler passing everything except messages of the
// given severity on to h.
func SkipSeverity(severity int64, h MessageHandler) MessageHandler {
	return func(msg Message) {
		if msg.MessageSeverity() == severity {
			return
		}
		h(msg)
	}
}

// MinSeverity returns a handler passing only messages with at least the given
// severity on to h.
func MinSeverity(min int64, h MessageHandler) MessageHandler {
	return func(msg Message) {
		if msg.MessageSeverity() < min {
			return
		}
		h(msg)
	}
}
