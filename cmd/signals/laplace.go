package main

import (
	"github.com/Veraticus/signal-companion/internal/cli"
	"github.com/spf13/cobra"
)

func laplaceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "laplace <f(t)>",
		Short: "Look up the Laplace transform of a time-domain signal",
		Long: `Match a time-domain expression such as "exp(-2*t)*u(t)" against the
table of transform pairs and print F(s), its region of convergence and
its poles and zeros.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := initEngine()
			if err != nil {
				return err
			}
			res, err := e.ForwardTransform(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if err := checkStrict(cmd, args[0], res.Kind); err != nil {
				return err
			}
			return emit(cmd, res, func(r *cli.Renderer) error {
				return r.Transform(res)
			})
		},
	}
	addJSONFlag(cmd)
	addStrictFlag(cmd)
	return cmd
}

func inverseCmd() *cobra.Command {
	var nonCausal bool

	cmd := &cobra.Command{
		Use:   "inverse <F(s)>",
		Short: "Look up the inverse Laplace transform of an s-domain expression",
		Long: `Match an s-domain expression such as "1/(s+3)" against the table of
transform pairs and print f(t) with the steps that lead to it.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := initEngine()
			if err != nil {
				return err
			}
			res, err := e.InverseTransform(cmd.Context(), args[0], !nonCausal)
			if err != nil {
				return err
			}
			if err := checkStrict(cmd, args[0], res.Kind); err != nil {
				return err
			}
			return emit(cmd, res, func(r *cli.Renderer) error {
				return r.Inverse(res)
			})
		},
	}
	cmd.Flags().BoolVar(&nonCausal, "non-causal", false, "drop the u(t) factor from the result")
	addJSONFlag(cmd)
	addStrictFlag(cmd)
	return cmd
}
