package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hsiuhsiu/ctmsg-go/pkg/ctmsg"
	"github.com/hsiuhsiu/ctmsg-go/pkg/ctmsg/fakelib"
)

func newReplayCmd() *cobra.Command {
	var (
		file      string
		printMsgs bool
	)

	cmd := &cobra.Command{
		Use:   "replay",
		Short: "Raise messages from a YAML fixture file through the callback bridge",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := getSettings(cmd)
			out := cmd.OutOrStdout()

			f, err := os.Open(file) // #nosec G304 -- path supplied by the operator
			if err != nil {
				return fmt.Errorf("open fixtures: %w", err)
			}
			defer f.Close()

			fixtures, err := fakelib.LoadFixtures(f)
			if err != nil {
				return err
			}

			srv, clt := ctmsg.NewMessageBroker(), ctmsg.NewMessageBroker()
			if s.cfg.LogServerMessages {
				srv.RegisterHandler(s.cfg.Sink(s.logger))
			}
			if s.cfg.LogClientMessages {
				clt.RegisterHandler(s.cfg.Sink(s.logger))
			}
			if printMsgs {
				w := ctmsg.WriterHandler(out)
				if !s.cfg.LogInform {
					w = ctmsg.SkipSeverity(ctmsg.SeverityInform, w)
				}
				srv.RegisterHandler(w)
				clt.RegisterHandler(w)
			}

			lib, err := fakelib.NewDispatching(srv, clt, s.logger)
			if err != nil {
				return err
			}

			var mismatches []error
			for i, status := range lib.Replay(fixtures) {
				fmt.Fprintf(out, "%d\t%s\n", i, status)
				if err := fixtures[i].Check(status); err != nil {
					mismatches = append(mismatches, fmt.Errorf("fixture %d: %w", i, err))
				}
			}
			return errors.Join(mismatches...)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML fixture file")
	cmd.Flags().BoolVar(&printMsgs, "print", false, "print each message as it is dispatched")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
