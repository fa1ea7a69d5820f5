package cli

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/viper"

	"github.com/hsiuhsiu/ctmsg-go/pkg/ctmsg"
	"github.com/hsiuhsiu/ctmsg-go/pkg/ctmsg/logging"
)

// settings is what every subcommand needs after configuration is resolved.
type settings struct {
	cfg    ctmsg.Config
	logger logging.Logger
}

func applyDefaults(v *viper.Viper) {
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")
	v.SetDefault("log_server_msgs", false)
	v.SetDefault("log_client_msgs", false)
	v.SetDefault("log_inform", false)
	v.SetDefault("redact_text", false)
	v.SetDefault("native_version", 0)
}

// loadSettings resolves configuration with precedence
// defaults < file < env (CTMSG_*) < flags. Flags must already be bound.
func loadSettings(v *viper.Viper, cfgPath string, stderr io.Writer) (*settings, error) {
	applyDefaults(v)

	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", cfgPath, err)
		}
	}

	v.SetEnvPrefix("ctmsg")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	format, err := logging.ParseFormat(v.GetString("log_format"))
	if err != nil {
		return nil, err
	}
	level, err := logging.ParseLevel(v.GetString("log_level"))
	if err != nil {
		return nil, err
	}

	return &settings{
		cfg: ctmsg.Config{
			NativeVersion:     v.GetInt32("native_version"),
			LogServerMessages: v.GetBool("log_server_msgs"),
			LogClientMessages: v.GetBool("log_client_msgs"),
			LogInform:         v.GetBool("log_inform"),
			RedactText:        v.GetBool("redact_text"),
		},
		logger: logging.New(slog.New(logging.NewHandler(stderr, format, level))),
	}, nil
}
