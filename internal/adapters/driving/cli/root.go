// Package cli implements the mdprune command tree. Commands talk to the
// core through the driving ports; services are injected via Configure
// before Execute runs.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/tidydocs/mdprune-cli/internal/core/domain"
	"github.com/tidydocs/mdprune-cli/internal/core/ports/driven"
	"github.com/tidydocs/mdprune-cli/internal/core/ports/driving"
	"github.com/tidydocs/mdprune-cli/internal/logger"
)

// version is overridden at build time via -ldflags.
var version = "0.1.0-dev"

var (
	scanService  driving.Scanner
	pruneService driving.Pruner
	historyStore driven.HistoryStore
	configStore  driven.ConfigStore
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "mdprune",
	Short: "Find and remove images no markdown document references",
	Long: `mdprune scans a directory tree for image files that are never
referenced by any markdown document in that tree, and removes the
orphans: permanently, to the system trash, or to a holding directory.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}

// Dependencies bundles everything the command tree needs.
// History and Config may be nil; the affected features degrade.
type Dependencies struct {
	Scanner driving.Scanner
	Pruner  driving.Pruner
	History driven.HistoryStore
	Config  driven.ConfigStore
}

// Configure injects the services the commands run against.
func Configure(deps Dependencies) {
	scanService = deps.Scanner
	pruneService = deps.Pruner
	historyStore = deps.History
	configStore = deps.Config
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// scanOptions merges flag values with config file defaults.
// Flags the user set explicitly always win over the file.
func scanOptions(cmd *cobra.Command, extensions string, excludes []string) driving.ScanOptions {
	if configStore != nil {
		if !cmd.Flags().Changed("extensions") {
			if v := configStore.GetString("extensions"); v != "" {
				extensions = v
			}
		}
		if !cmd.Flags().Changed("exclude") {
			if v := configStore.GetStringSlice("exclude"); len(v) > 0 {
				excludes = v
			}
		}
	}
	return driving.ScanOptions{
		Extensions: domain.ParseExtensions(extensions),
		Excludes:   excludes,
	}
}
