// Package logging provides the small logging facade used by ctmsg.
//
// Logger wraps the subset of log/slog that the message dispatchers and sinks
// need, so applications can plug in their own implementation:
//
//	logger := logging.New(slog.New(logging.NewHandler(os.Stderr, logging.FormatJSON, slog.LevelInfo)))
//	lib, err := ctmsg.Open(cfg, ctmsg.WithLogger(logger))
//
// Server and client messages can carry statement text or object names. Sinks
// that should not write those use Redacted in place of the value:
//
//	logger.Info(ctx, "server message", logging.Redacted("text"))
//	// text="[redacted]"
//
// The callback entry points themselves never log.
package logging
