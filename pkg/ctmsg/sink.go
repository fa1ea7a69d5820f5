package ctmsg

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/hsiuhsiu/ctmsg-go/pkg/ctmsg/logging"
)

// LogHandler returns a handler writing one structured record per message.
// With redactText set the message text and OS string are replaced by the
// redaction placeholder.
func LogHandler(logger logging.Logger, redactText bool) MessageHandler {
	text := func(key, value string) slog.Attr {
		if redactText {
			return logging.Redacted(key)
		}
		return slog.String(key, value)
	}

	return func(msg Message) {
		ctx := context.Background()
		switch m := msg.(type) {
		case ServerMessage:
			logger.Info(ctx, "server message",
				"kind", "server",
				"msgnumber", m.MsgNumber,
				"state", m.State,
				"severity", m.Severity,
				text("text", m.Text),
				"server", m.Server,
				"proc", m.Proc,
				"line", m.Line,
				"sqlstate", m.SQLState,
			)
		case ClientMessage:
			logger.Info(ctx, "client message",
				"kind", "client",
				"msgnumber", m.MsgNumber,
				"severity", m.Severity,
				text("text", m.Text),
				"osnumber", m.OSNumber,
				text("osstring", m.OSString),
				"status", m.Status,
				"sqlstate", m.SQLState,
			)
		default:
			logger.Info(ctx, "message",
				"msgnumber", msg.MessageNumber(),
				"severity", msg.MessageSeverity(),
				text("text", msg.Content()),
			)
		}
	}
}

// WriterHandler returns a handler printing each message as an indented
// block to w. Client blocks align their values one column further right than
// server blocks. Writes from concurrent callbacks do not interleave.
func WriterHandler(w io.Writer) MessageHandler {
	var mu sync.Mutex

	return func(msg Message) {
		mu.Lock()
		defer mu.Unlock()

		switch m := msg.(type) {
		case ServerMessage:
			fmt.Fprintln(w, "Server message:")
			fmt.Fprintf(w, "\tmsgnumber:   %d\n", m.MsgNumber)
			fmt.Fprintf(w, "\tstate:       %d\n", m.State)
			fmt.Fprintf(w, "\tseverity:    %d\n", m.Severity)
			fmt.Fprintf(w, "\ttext:        %s\n", m.Text)
			fmt.Fprintf(w, "\tserver:      %s\n", m.Server)
			fmt.Fprintf(w, "\tproc:        %s\n", m.Proc)
			fmt.Fprintf(w, "\tline:        %d\n", m.Line)
			fmt.Fprintf(w, "\tsqlstate:    %s\n", m.SQLState)
		case ClientMessage:
			fmt.Fprintln(w, "Client message:")
			fmt.Fprintf(w, "\tseverity:     %d\n", m.Severity)
			fmt.Fprintf(w, "\tmsgnumber:    %d\n", m.MsgNumber)
			fmt.Fprintf(w, "\tmsgstring:    %s\n", m.Text)
			fmt.Fprintf(w, "\tosnumber:     %d\n", m.OSNumber)
			fmt.Fprintf(w, "\tosstring:     %s\n", m.OSString)
			fmt.Fprintf(w, "\tstatus:       %d\n", m.Status)
			fmt.Fprintf(w, "\tsqlstate:     %s\n", m.SQLState)
		default:
			fmt.Fprintln(w, "Message:")
			fmt.Fprintf(w, "\tmsgnumber:   %d\n", msg.MessageNumber())
			fmt.Fprintf(w, "\tseverity:    %d\n", msg.MessageSeverity())
			fmt.Fprintf(w, "\ttext:        %s\n", msg.Content())
		}
	}
}
