package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent scan and prune runs",
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "maximum number of runs to list")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, _ []string) error {
	if historyStore == nil {
		return errors.New("history store not configured")
	}

	records, err := historyStore.Recent(cmd.Context(), historyLimit)
	if err != nil {
		return fmt.Errorf("failed to read history: %w", err)
	}

	if len(records) == 0 {
		cmd.Println("No recorded runs.")
		return nil
	}

	cmd.Println("Recent runs:")
	cmd.Println()
	for _, rec := range records {
		cmd.Printf("  %s  %-16s %s\n",
			rec.RanAt.Local().Format("2006-01-02 15:04:05"), rec.Action, rec.Root)
		cmd.Printf("      orphans: %d, acted on: %d\n", rec.OrphanCount, rec.ActedCount)
	}
	return nil
}
