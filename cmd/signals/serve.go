package main

import (
	"fmt"

	"github.com/Veraticus/signal-companion/internal/api"
	"github.com/Veraticus/signal-companion/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the calculations over HTTP",
		Long: `Start the JSON API under /api/v1 together with the websocket
convolution stream. The listen address comes from --host/--port, the
server section of the config file, SIGNALS_SERVER_* variables or the
HOST and PORT environment variables, in that order.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			serverCfg, err := config.LoadServerConfig()
			if err != nil {
				return fmt.Errorf("failed to load server config: %w", err)
			}
			ui, err := config.LoadUIConfig()
			if err != nil {
				return fmt.Errorf("failed to load ui config: %w", err)
			}
			e, err := initEngine()
			if err != nil {
				return err
			}

			return api.NewServer(e, *serverCfg, ui.PlaybackInterval).Run(cmd.Context())
		},
	}

	cmd.Flags().String("host", "", "interface to listen on (default 0.0.0.0)")
	cmd.Flags().Int("port", 0, "port to listen on (default 8000)")
	_ = viper.BindPFlag("server.host", cmd.Flags().Lookup("host"))
	_ = viper.BindPFlag("server.port", cmd.Flags().Lookup("port"))

	return cmd
}
