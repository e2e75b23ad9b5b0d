package main

import (
	"fmt"
	"io"
	"os"

	"github.com/Veraticus/signal-companion/internal/cli"
	"github.com/Veraticus/signal-companion/internal/common"
	"github.com/Veraticus/signal-companion/internal/config"
	"github.com/spf13/cobra"
)

func batchCmd() *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "batch <file>",
		Short: "Evaluate many requests from a file",
		Long: `Read one request per line in the form "operation<TAB>argument..." and
write one JSON result per line. Operations are properties, laplace,
inverse, inverse-noncausal, convolve and lti. Use "-" to read stdin.
Blank lines and lines starting with # are skipped.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := initEngine()
			if err != nil {
				return err
			}

			var in io.Reader = cmd.InOrStdin()
			if args[0] != "-" {
				f, err := os.Open(config.ExpandPath(args[0]))
				if err != nil {
					return common.NewUserError("cannot open batch file", err)
				}
				defer func() {
					if cerr := f.Close(); cerr != nil {
						common.LogError(cerr, "failed to close batch file", common.Fields{"path": args[0]})
					}
				}()
				in = f
			}

			var progress io.Writer
			if !quiet {
				progress = cmd.ErrOrStderr()
			}

			interrupts := cli.NewInterruptHandler(cmd.ErrOrStderr())
			ctx := interrupts.HandleInterrupts(cmd.Context())

			summary, err := cli.NewBatchRunner(e, cmd.OutOrStdout(), progress).Run(ctx, in)
			if err != nil {
				if interrupts.WasInterrupted() {
					return nil
				}
				return err
			}

			if !quiet {
				fmt.Fprintln(cmd.ErrOrStderr(), cli.FormatSummary(summary))
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "suppress progress and summary output")
	return cmd
}
