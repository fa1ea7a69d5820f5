package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hsiuhsiu/ctmsg-go/pkg/ctmsg"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the wrapper and Client-Library versions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "ctmsg-go: %s\n", ctmsg.WrapperVersion())

			lib, err := ctmsg.Open(getSettings(cmd).cfg, ctmsg.WithLogger(getSettings(cmd).logger))
			if err != nil {
				fmt.Fprintf(out, "client-library: unavailable (%v)\n", err)
				return nil
			}
			defer lib.Close()

			v, err := lib.Version()
			if err != nil {
				return fmt.Errorf("query client-library version: %w", err)
			}
			fmt.Fprintf(out, "client-library: %s\n", v)
			return nil
		},
	}
}

func newOpenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "open",
		Short: "Allocate a context, register the message callbacks and release it again",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := getSettings(cmd)
			out := cmd.OutOrStdout()

			lib, err := ctmsg.Open(s.cfg, ctmsg.WithLogger(s.logger))
			if err != nil {
				if errors.Is(err, ctmsg.ErrCGONotEnabled) || errors.Is(err, ctmsg.ErrNotBuilt) {
					fmt.Fprintf(out, "library unavailable: %v\n", err)
					return nil
				}
				return fmt.Errorf("open client-library: %w", err)
			}

			fmt.Fprintln(out, "callbacks registered")
			if err := lib.Close(); err != nil {
				return fmt.Errorf("close client-library: %w", err)
			}
			return nil
		},
	}
}
