package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mcunha/anvil/internal/config"
	"github.com/mcunha/anvil/internal/engine"
	"github.com/mcunha/anvil/internal/storage"
	"github.com/mcunha/anvil/internal/templates"
)

var rootCmd = &cobra.Command{
	Use:   "anvil",
	Short: "CLI tracker for a periodized strength program: leaders, anchors, TMs and PRs",
}

func Execute() error {
	return rootCmd.Execute()
}

// newEngine opens the configured database and template catalog and wires
// them into an engine. Every subcommand starts here.
func newEngine() (*engine.Engine, *config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	st, err := storage.Open(cfg)
	if err != nil {
		return nil, nil, err
	}

	catalog := templates.NewCatalog(cfg.Templates.Dir)
	return engine.New(st, catalog), cfg, nil
}
