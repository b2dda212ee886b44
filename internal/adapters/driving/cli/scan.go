package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tidydocs/mdprune-cli/internal/core/domain"
	"github.com/tidydocs/mdprune-cli/internal/core/services"
)

var (
	scanExtensions string
	scanExcludes   []string
	scanJSON       bool
)

var scanCmd = &cobra.Command{
	Use:   "scan [directory]",
	Short: "List orphaned images without removing anything",
	Long: `Walks the directory tree, collects every image whose extension is in
the configured set, extracts image references from every markdown
document, and lists the images nothing references. Read-only.`,
	Args: cobra.ExactArgs(1),
	RunE: runScan,
}

func init() {
	scanCmd.Flags().StringVarP(&scanExtensions, "extensions", "e", domain.DefaultExtensions,
		"comma-separated image extensions to consider")
	scanCmd.Flags().StringArrayVar(&scanExcludes, "exclude", nil,
		"glob pattern to skip, relative to the scan root (repeatable)")
	scanCmd.Flags().BoolVar(&scanJSON, "json", false, "output the result as JSON")
	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	if scanService == nil {
		return errors.New("scan service not configured")
	}

	opts := scanOptions(cmd, scanExtensions, scanExcludes)
	result, err := scanService.Scan(cmd.Context(), args[0], opts)
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	if pruneService != nil {
		pruneService.RecordScan(cmd.Context(), result)
	}

	if scanJSON {
		return outputScanJSON(cmd, result)
	}

	outputScanReport(cmd, result)
	return nil
}

// scanReport is the JSON shape of a scan result. Orphans are reported
// both canonically and relative to the root for display.
type scanReport struct {
	Root       string   `json:"root"`
	Orphans    []string `json:"orphans"`
	Images     int      `json:"images"`
	Markdown   int      `json:"markdown"`
	Referenced int      `json:"referenced"`
}

func outputScanJSON(cmd *cobra.Command, result *domain.ScanResult) error {
	report := scanReport{
		Root:       result.Root,
		Orphans:    result.Orphans,
		Images:     result.ImageCount,
		Markdown:   result.MarkdownCount,
		Referenced: result.ReferencedCount,
	}
	if report.Orphans == nil {
		report.Orphans = []string{}
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputScanReport(cmd *cobra.Command, result *domain.ScanResult) {
	cmd.Printf("Scanned %d markdown file(s) and %d image(s) under %s\n",
		result.MarkdownCount, result.ImageCount, result.Root)

	if len(result.Orphans) == 0 {
		cmd.Println("No orphaned images found.")
		return
	}

	cmd.Println()
	for _, orphan := range result.Orphans {
		cmd.Printf("  %s\n", services.Relativize(orphan, result.Root))
	}
	cmd.Println()
	cmd.Printf("Found %d orphaned image(s).\n", len(result.Orphans))
}
