package main

import (
	"fmt"

	"github.com/Veraticus/signal-companion/internal/api"
	"github.com/Veraticus/signal-companion/internal/cli"
	"github.com/spf13/cobra"
)

func schemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema [name]",
		Short: "Print the JSON schema of an API payload",
		Long:  `Without a name, list the available schemas. With a name, print that schema as JSON.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				for _, name := range api.SchemaNames() {
					fmt.Fprintln(cmd.OutOrStdout(), name)
				}
				return nil
			}
			s, err := api.Schema(args[0])
			if err != nil {
				return err
			}
			return cli.WriteJSON(cmd.OutOrStdout(), s)
		},
	}
}
