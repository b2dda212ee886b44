package cli

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/tidydocs/mdprune-cli/internal/adapters/driving/tui"
	"github.com/tidydocs/mdprune-cli/internal/core/domain"
	"github.com/tidydocs/mdprune-cli/internal/core/services"
)

var (
	pruneExtensions  string
	pruneExcludes    []string
	pruneDelete      bool
	pruneRecycle     bool
	pruneMoveDir     string
	pruneInteractive bool
)

var pruneCmd = &cobra.Command{
	Use:   "prune [directory]",
	Short: "Remove orphaned images",
	Long: `Scans the directory tree like 'mdprune scan', then removes every
orphan with the selected action:

  --delete       remove the files permanently
  --recycle      move them to the system trash (the default)
  --move DIR     move them into DIR, creating it if needed

With --interactive the orphans are reviewed in a checklist first and
only the confirmed ones are removed.`,
	Args: cobra.ExactArgs(1),
	RunE: runPrune,
}

func init() {
	pruneCmd.Flags().StringVarP(&pruneExtensions, "extensions", "e", domain.DefaultExtensions,
		"comma-separated image extensions to consider")
	pruneCmd.Flags().StringArrayVar(&pruneExcludes, "exclude", nil,
		"glob pattern to skip, relative to the scan root (repeatable)")
	pruneCmd.Flags().BoolVar(&pruneDelete, "delete", false, "delete orphans permanently")
	pruneCmd.Flags().BoolVar(&pruneRecycle, "recycle", false, "move orphans to the system trash")
	pruneCmd.Flags().StringVar(&pruneMoveDir, "move", "", "move orphans into this directory")
	pruneCmd.Flags().BoolVarP(&pruneInteractive, "interactive", "i", false,
		"review orphans in a checklist before removing")
	rootCmd.AddCommand(pruneCmd)
}

func runPrune(cmd *cobra.Command, args []string) error {
	if scanService == nil || pruneService == nil {
		return errors.New("prune service not configured")
	}

	action, err := pruneAction(cmd)
	if err != nil {
		return err
	}

	opts := scanOptions(cmd, pruneExtensions, pruneExcludes)
	result, err := scanService.Scan(cmd.Context(), args[0], opts)
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	if len(result.Orphans) == 0 {
		cmd.Println("No orphaned images found.")
		pruneService.RecordScan(cmd.Context(), result)
		return nil
	}

	paths := result.Orphans
	if pruneInteractive {
		paths, err = reviewOrphans(result)
		if err != nil {
			return err
		}
		if paths == nil {
			cmd.Println("Cancelled; no files were touched.")
			return nil
		}
	} else {
		for _, orphan := range paths {
			cmd.Printf("  %s\n", services.Relativize(orphan, result.Root))
		}
		cmd.Println()
	}

	acted, err := pruneService.Prune(cmd.Context(), result, action, paths)
	if err != nil {
		return fmt.Errorf("prune failed: %w", err)
	}

	cmd.Printf("%s %d image(s).\n", actedVerb(action.Kind), acted)
	return nil
}

// pruneAction picks the removal action from flags, falling back to the
// config file, falling back to recycle. At most one action flag may be
// set.
func pruneAction(cmd *cobra.Command) (domain.Action, error) {
	set := 0
	if pruneDelete {
		set++
	}
	if pruneRecycle {
		set++
	}
	if pruneMoveDir != "" {
		set++
	}
	if set > 1 {
		return domain.Action{}, fmt.Errorf(
			"%w: --delete, --recycle and --move are mutually exclusive", domain.ErrInvalidInput)
	}

	switch {
	case pruneDelete:
		return domain.Action{Kind: domain.ActionDelete}, nil
	case pruneMoveDir != "":
		return domain.Action{Kind: domain.ActionMove, MoveDir: pruneMoveDir}, nil
	case pruneRecycle:
		return domain.Action{Kind: domain.ActionRecycle}, nil
	}

	if configStore != nil {
		switch configStore.GetString("action") {
		case string(domain.ActionDelete):
			return domain.Action{Kind: domain.ActionDelete}, nil
		case string(domain.ActionMove):
			if dir := configStore.GetString("move_dir"); dir != "" {
				return domain.Action{Kind: domain.ActionMove, MoveDir: dir}, nil
			}
		}
	}

	return domain.Action{Kind: domain.ActionRecycle}, nil
}

// reviewOrphans runs the interactive checklist. It returns the
// confirmed selection, or nil when the user cancelled.
func reviewOrphans(result *domain.ScanResult) ([]string, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return nil, fmt.Errorf("%w: interactive review needs a terminal", domain.ErrNoTerminal)
	}

	model, err := tea.NewProgram(tui.NewReview(result.Root, result.Orphans)).Run()
	if err != nil {
		return nil, fmt.Errorf("interactive review failed: %w", err)
	}

	review, ok := model.(*tui.ReviewModel)
	if !ok || !review.Confirmed() {
		return nil, nil
	}
	selected := review.Selected()
	if selected == nil {
		selected = []string{}
	}
	return selected, nil
}

func actedVerb(kind domain.ActionKind) string {
	switch kind {
	case domain.ActionDelete:
		return "Deleted"
	case domain.ActionMove:
		return "Moved"
	default:
		return "Recycled"
	}
}
