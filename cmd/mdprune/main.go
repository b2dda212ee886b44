package main

import (
	"fmt"
	"os"

	"github.com/tidydocs/mdprune-cli/internal/adapters/driven/actions"
	configfile "github.com/tidydocs/mdprune-cli/internal/adapters/driven/config/file"
	"github.com/tidydocs/mdprune-cli/internal/adapters/driven/storage/sqlite"
	"github.com/tidydocs/mdprune-cli/internal/adapters/driving/cli"
	"github.com/tidydocs/mdprune-cli/internal/core/services"
	"github.com/tidydocs/mdprune-cli/internal/extractors/markdown"
	"github.com/tidydocs/mdprune-cli/internal/logger"
)

func main() {
	deps, err := buildDependencies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if deps.History != nil {
		defer deps.History.Close() //nolint:errcheck // Best-effort close on exit
	}

	cli.Configure(deps)
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

// buildDependencies wires the adapters into the core services.
// A malformed config file is fatal; an unavailable history store only
// degrades the feature with a warning.
func buildDependencies() (cli.Dependencies, error) {
	deps := cli.Dependencies{
		Scanner: services.NewScannerService(markdown.New()),
	}

	store, err := configfile.NewConfigStore("")
	if err != nil {
		return cli.Dependencies{}, fmt.Errorf("loading config: %w", err)
	}
	deps.Config = store

	history, err := sqlite.NewHistoryStore("")
	if err != nil {
		logger.Warn("history unavailable: %v", err)
	} else {
		deps.History = history
	}

	deps.Pruner = services.NewPruneService(actions.NewFactory(), deps.History)
	return deps, nil
}
