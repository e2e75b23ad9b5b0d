package main

import (
	"fmt"

	"github.com/Veraticus/signal-companion/internal/cli"
	"github.com/Veraticus/signal-companion/internal/config"
	"github.com/Veraticus/signal-companion/internal/tui"
	"github.com/Veraticus/signal-companion/internal/tui/themes"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func convolveCmd() *cobra.Command {
	var play bool

	cmd := &cobra.Command{
		Use:   "convolve <x(t)> <h(t)>",
		Short: "Convolve two signals, optionally as an animation",
		Long: `Compute y(t) = x(t) * h(t) and plot the result. With --play the
convolution is shown in an interactive player that sweeps through its
frames; space plays or pauses, r resets, l switches language, q quits.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := initEngine()
			if err != nil {
				return err
			}

			if play {
				ui, err := config.LoadUIConfig()
				if err != nil {
					return fmt.Errorf("failed to load ui config: %w", err)
				}
				return tui.Run(cmd.Context(),
					tui.WithCalculator(e),
					tui.WithSignals(args[0], args[1]),
					tui.WithLanguage(ui.Language),
					tui.WithInterval(ui.PlaybackInterval),
					tui.WithTheme(themes.GetTheme(viper.GetString("ui.theme"))),
				)
			}

			res, err := e.Convolve(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			return emit(cmd, res, func(r *cli.Renderer) error {
				return r.Convolution(res)
			})
		},
	}
	cmd.Flags().BoolVar(&play, "play", false, "open the interactive convolution player")
	addJSONFlag(cmd)
	return cmd
}
