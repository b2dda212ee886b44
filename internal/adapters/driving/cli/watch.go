package cli

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/tidydocs/mdprune-cli/internal/core/domain"
	"github.com/tidydocs/mdprune-cli/internal/core/ports/driving"
	"github.com/tidydocs/mdprune-cli/internal/logger"
	"github.com/tidydocs/mdprune-cli/internal/watcher"
)

var (
	watchExtensions string
	watchExcludes   []string
)

var watchCmd = &cobra.Command{
	Use:   "watch [directory]",
	Short: "Re-scan on filesystem changes",
	Long: `Watches the directory tree and re-runs the orphan scan whenever a
markdown document or image changes, printing the fresh orphan list.
Watch mode is read-only; it never removes files. Stop with Ctrl-C.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringVarP(&watchExtensions, "extensions", "e", domain.DefaultExtensions,
		"comma-separated image extensions to consider")
	watchCmd.Flags().StringArrayVar(&watchExcludes, "exclude", nil,
		"glob pattern to skip, relative to the scan root (repeatable)")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if scanService == nil {
		return errors.New("scan service not configured")
	}

	root := args[0]
	opts := scanOptions(cmd, watchExtensions, watchExcludes)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initial scan validates the root before the watch starts.
	if err := watchScan(ctx, cmd, root, opts); err != nil {
		return err
	}

	relevant := func(path string) bool {
		ext := filepath.Ext(path)
		return opts.Extensions.Contains(ext) || domain.IsMarkdownExt(ext)
	}
	onSettle := func() {
		cmd.Printf("\n--- change detected at %s ---\n", time.Now().Format("15:04:05"))
		if err := watchScan(ctx, cmd, root, opts); err != nil {
			logger.Error("re-scan failed: %v", err)
		}
	}

	cmd.Println("\nWatching for changes. Press Ctrl-C to stop.")
	err := watcher.New(root, relevant, onSettle).Watch(ctx)
	if errors.Is(err, context.Canceled) {
		cmd.Println("Stopped.")
		return nil
	}
	return err
}

func watchScan(ctx context.Context, cmd *cobra.Command, root string, opts driving.ScanOptions) error {
	result, err := scanService.Scan(ctx, root, opts)
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}
	outputScanReport(cmd, result)
	return nil
}
