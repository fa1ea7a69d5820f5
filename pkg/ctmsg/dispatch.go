package ctmsg

import (
	"context"

	"github.com/hsiuhsiu/ctmsg-go/pkg/ctmsg/logging"
)

// ServerDispatcher returns the default server-message handler: it decodes the
// record, publishes the message on broker and answers StatusSucceed. A record
// that fails to decode is logged and dropped.
func ServerDispatcher[R any](decode func(R) (ServerMessage, error), broker *MessageBroker, logger logging.Logger) Handler[R] {
	if logger == nil {
		logger = logging.Discard()
	}
	return func(rec R) Status {
		msg, err := decode(rec)
		if err != nil {
			logger.Warn(context.Background(), "dropping undecodable server message", "error", err)
			return StatusSucceed
		}
		broker.Publish(msg)
		return StatusSucceed
	}
}

// ClientDispatcher is the client-message counterpart of ServerDispatcher.
// It also answers StatusSucceed on decode failure: any other status from the
// client-message callback makes Client-Library mark the connection dead.
func ClientDispatcher[R any](decode func(R) (ClientMessage, error), broker *MessageBroker, logger logging.Logger) Handler[R] {
	if logger == nil {
		logger = logging.Discard()
	}
	return func(rec R) Status {
		msg, err := decode(rec)
		if err != nil {
			logger.Warn(context.Background(), "dropping undecodable client message", "error", err)
			return StatusSucceed
		}
		broker.Publish(msg)
		return StatusSucceed
	}
}
