package main

import (
	"github.com/Veraticus/signal-companion/internal/cli"
	"github.com/spf13/cobra"
)

func ltiCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lti <H(s)>",
		Short: "Analyze an LTI transfer function",
		Long: `Report the stability, order, poles, zeros and DC gain of a transfer
function such as "1/(s+2)", with its step, impulse and frequency responses.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := initEngine()
			if err != nil {
				return err
			}
			a, err := e.AnalyzeLTI(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if err := checkStrict(cmd, args[0], a.Kind); err != nil {
				return err
			}
			return emit(cmd, a, func(r *cli.Renderer) error {
				return r.LTI(a)
			})
		},
	}
	addJSONFlag(cmd)
	addStrictFlag(cmd)
	return cmd
}

func libraryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "library",
		Short: "Show the canonical signal library",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := initEngine()
			if err != nil {
				return err
			}
			entries, err := e.SignalLibrary(cmd.Context())
			if err != nil {
				return err
			}
			return emit(cmd, entries, func(r *cli.Renderer) error {
				return r.Library(entries)
			})
		},
	}
	addJSONFlag(cmd)
	return cmd
}
