package main

import (
	"fmt"

	"github.com/Veraticus/signal-companion/internal/cli"
	"github.com/Veraticus/signal-companion/internal/common"
	"github.com/Veraticus/signal-companion/internal/config"
	"github.com/Veraticus/signal-companion/internal/engine"
	"github.com/Veraticus/signal-companion/internal/model"
	"github.com/spf13/cobra"
)

const (
	jsonFlag   = "json"
	strictFlag = "strict"
)

func addJSONFlag(cmd *cobra.Command) {
	cmd.Flags().Bool(jsonFlag, false, "print the result as JSON")
}

func addStrictFlag(cmd *cobra.Command) {
	cmd.Flags().Bool(strictFlag, false, "fail instead of showing the default result for an unrecognized expression")
}

// checkStrict rejects a fallback result when --strict is set.
func checkStrict(cmd *cobra.Command, input string, kind model.MatchKind) error {
	strict, _ := cmd.Flags().GetBool(strictFlag)
	if strict && kind == model.KindUnrecognized {
		return fmt.Errorf("%w: %q", common.ErrUnrecognizedExpression, input)
	}
	return nil
}

func initEngine() (*engine.Engine, error) {
	e, err := engine.New()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize engine: %w", err)
	}
	return e, nil
}

func newRenderer(cmd *cobra.Command) (*cli.Renderer, error) {
	ui, err := config.LoadUIConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load ui config: %w", err)
	}
	return cli.NewRenderer(cmd.OutOrStdout(), ui.Language), nil
}

// emit prints v as JSON when --json is set, and otherwise hands it to render.
func emit(cmd *cobra.Command, v any, render func(*cli.Renderer) error) error {
	asJSON, _ := cmd.Flags().GetBool(jsonFlag)
	if asJSON {
		return cli.WriteJSON(cmd.OutOrStdout(), v)
	}
	r, err := newRenderer(cmd)
	if err != nil {
		return err
	}
	return render(r)
}
