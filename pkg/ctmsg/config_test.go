package ctmsg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigFromEnvDefaults(t *testing.T) {
	cfg, err := NewConfigFromEnv("CTMSGTEST_EMPTY_")
	require.NoError(t, err)

	assert.Equal(t, Config{}, cfg)
}

func TestNewConfigFromEnv(t *testing.T) {
	t.Setenv("CTMSG_LOG_SERVER_MSGS", "true")
	t.Setenv("CTMSG_LOG_CLIENT_MSGS", "1")
	t.Setenv("CTMSG_LOG_INFORM", "true")
	t.Setenv("CTMSG_REDACT_TEXT", "true")
	t.Setenv("CTMSG_NATIVE_VERSION", "15001")

	cfg, err := NewConfigFromEnv("")
	require.NoError(t, err)

	assert.Equal(t, Config{
		NativeVersion:     15001,
		LogServerMessages: true,
		LogClientMessages: true,
		LogInform:         true,
		RedactText:        true,
	}, cfg)
}

func TestNewConfigFromEnvInvalid(t *testing.T) {
	t.Setenv("ASE_LOG_SERVER_MSGS", "perhaps")

	_, err := NewConfigFromEnv("ASE_")
	require.Error(t, err)
}

func TestConfigSinkSkipsInformByDefault(t *testing.T) {
	var logger recordingLogger
	h := Config{}.Sink(&logger)
	h(ServerMessage{Severity: SeverityInform})
	h(ServerMessage{Severity: 16})
	assert.Equal(t, 1, logger.infos)

	h = Config{LogInform: true}.Sink(&logger)
	h(ServerMessage{Severity: SeverityInform})
	assert.Equal(t, 2, logger.infos)
}
