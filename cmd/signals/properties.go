package main

import (
	"github.com/Veraticus/signal-companion/internal/cli"
	"github.com/spf13/cobra"
)

func propertiesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "properties <equation>",
		Short: "Check linearity, causality, stability, memory and time invariance",
		Long: `Inspect a system equation such as "y[n] = x[n] + x[n-1]" and report,
for each of the five classic properties, whether it holds and why.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := initEngine()
			if err != nil {
				return err
			}
			report, err := e.AnalyzeProperties(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return emit(cmd, report, func(r *cli.Renderer) error {
				return r.Properties(args[0], report)
			})
		},
	}
	addJSONFlag(cmd)
	return cmd
}
