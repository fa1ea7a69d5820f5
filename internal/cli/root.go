package cli

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type ctxKey string

const settingsKey ctxKey = "settings"

// Execute builds the root command and runs it.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd constructs the root command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	var cfgPath string
	v := viper.New()

	cmd := &cobra.Command{
		Use:           "ctmsg",
		Short:         "Inspect Client-Library message callbacks",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSettings(v, cfgPath, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			cmd.SetContext(context.WithValue(cmd.Context(), settingsKey, s))
			return nil
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&cfgPath, "config", "", "path to config file (yaml|toml|json)")
	flags.String("log-level", "info", "log level: debug, info, warn, error")
	flags.String("log-format", "text", "log format: text or json")
	flags.Bool("log-server-msgs", false, "log server messages")
	flags.Bool("log-client-msgs", false, "log client messages")
	flags.Bool("log-inform", false, "include informational server messages (severity 10)")
	flags.Bool("redact-text", false, "redact message text in the logs")
	flags.Int32("native-version", 0, "CS_VERSION_* passed to cs_ctx_alloc; 0 uses the linked headers")

	for key, flag := range map[string]string{
		"log_level":       "log-level",
		"log_format":      "log-format",
		"log_server_msgs": "log-server-msgs",
		"log_client_msgs": "log-client-msgs",
		"log_inform":      "log-inform",
		"redact_text":     "redact-text",
		"native_version":  "native-version",
	} {
		_ = v.BindPFlag(key, flags.Lookup(flag))
	}

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newOpenCmd())
	cmd.AddCommand(newReplayCmd())

	cmd.Run = func(cmd *cobra.Command, args []string) { _ = cmd.Help() }

	return cmd
}

func getSettings(cmd *cobra.Command) *settings {
	s, _ := cmd.Context().Value(settingsKey).(*settings)
	return s
}
