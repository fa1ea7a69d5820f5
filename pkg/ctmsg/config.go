package ctmsg

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// DefaultEnvPrefix is the prefix NewConfigFromEnv uses when none is given.
const DefaultEnvPrefix = "CTMSG_"

// Config controls how Open sets up the native context and which built-in
// sinks it attaches to the brokers.
type Config struct {
	// NativeVersion is the CS_VERSION_* value passed to cs_ctx_alloc and
	// ct_init. Zero selects the version of the linked headers.
	NativeVersion int32 `env:"NATIVE_VERSION"`

	// LogServerMessages attaches a LogHandler to the server broker.
	LogServerMessages bool `env:"LOG_SERVER_MSGS"`

	// LogClientMessages attaches a LogHandler to the client broker.
	LogClientMessages bool `env:"LOG_CLIENT_MSGS"`

	// LogInform lets messages of SeverityInform through to the attached log
	// handlers. They are left out by default.
	LogInform bool `env:"LOG_INFORM"`

	// RedactText replaces message text with a placeholder in the attached
	// log handlers.
	RedactText bool `env:"REDACT_TEXT"`
}

// NewConfigFromEnv reads a Config from environment variables carrying the
// given prefix, e.g. CTMSG_LOG_SERVER_MSGS=true. An empty prefix selects
// DefaultEnvPrefix.
func NewConfigFromEnv(prefix string) (Config, error) {
	if prefix == "" {
		prefix = DefaultEnvPrefix
	}

	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: prefix}); err != nil {
		return Config{}, fmt.Errorf("ctmsg: parse env: %w", err)
	}
	return cfg, nil
}
