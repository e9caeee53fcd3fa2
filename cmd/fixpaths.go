package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"os"

	"mirrortidy/constants/lipgloss"
	"mirrortidy/restructurer"
	"mirrortidy/restructurer/models"
	"mirrortidy/transformer"
	"mirrortidy/utils"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// fixPathsCmd: mirrortidy fix-paths
var fixPathsCmd = &cobra.Command{
	Use:   "fix-paths [root]",
	Short: "Flatten the duplicated mirror directory and rewrite link prefixes.",
	Long: `The 'fix-paths' subcommand removes the domain-named subdirectory the
mirroring tool nested the site under: it resolves the duplicate index.html
conflict, migrates the subdirectory's contents up to the site root, and then
rewrites the parent-traversal prefixes of every HTML page to match its depth
under the new root.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		force, _ := cmd.Flags().GetBool("force")

		rootDependencies := handleRootCommand(cmd)
		if rootDependencies == nil {
			return
		}
		handleFixPathsCommand(rootDependencies, args, force)
	},
}

func init() {
	fixPathsCmd.Flags().BoolP("force", "f", false, "Restructure without confirmation")
	rootCmd.AddCommand(fixPathsCmd)
}

func handleFixPathsCommand(rootDependencies *RootDependencies, args []string, force bool) {
	rootDir := resolveRootDir(args, rootDependencies)

	spinner := pterm.DefaultSpinner.WithStyle(pterm.NewStyle(pterm.FgLightBlue)).WithSequence("⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏").WithDelay(100).WithRemoveWhenDone(true)

	// Phase 1: flatten the mirror directory, when one exists
	mirrorRestructurer := restructurer.NewRestructurer(rootDependencies.Config.MirrorDir)
	mirrorName := rootDependencies.Config.MirrorDir

	resolved, err := mirrorRestructurer.ResolveMirrorDir(rootDir)
	switch {
	case errors.Is(err, restructurer.ErrMirrorDirNotFound):
		fmt.Println(lipgloss.Yellow.Render("No nested mirror directory found, skipping the restructuring step."))

	case err != nil:
		fmt.Println(lipgloss.Red.Render(fmt.Sprintf("%v", err)))
		return

	default:
		mirrorName = resolved

		if !force {
			reader := bufio.NewReader(os.Stdin)
			accepted, err := utils.ConfirmPrompt(fmt.Sprintf("Flatten '%s' into the site root? This moves and renames files", resolved), reader)
			if err != nil {
				fmt.Println(lipgloss.Red.Render(fmt.Sprintf("%v", err)))
				return
			}
			if !accepted {
				fmt.Println(lipgloss.Yellow.Render("Restructuring cancelled."))
				return
			}
		}

		spinnerFlatten, _ := spinner.Start("Flattening mirror directory...")
		result, err := mirrorRestructurer.FlattenMirrorRoot(rootDir)
		spinnerFlatten.Stop()
		fmt.Print("\r")

		if err != nil {
			fmt.Println(lipgloss.Red.Render(fmt.Sprintf("%v", err)))
			return
		}

		reportFlatten(rootDependencies, result)
	}

	// Phase 2: rewrite link prefixes across every page
	spinnerScan, _ := spinner.Start("Scanning pages...")
	scan, err := rootDependencies.Scanner.ScanHTMLFiles(rootDir)
	spinnerScan.Stop()
	fmt.Print("\r")

	if err != nil {
		fmt.Println(lipgloss.Red.Render(fmt.Sprintf("%v", err)))
		return
	}

	transformPages(rootDependencies, scan.Pages, transformer.NewPathRewriter(mirrorName))

	rootDependencies.Reporter.DisplaySummary("fix-paths")
}

func reportFlatten(rootDependencies *RootDependencies, result *models.FlattenResult) {
	fmt.Println(lipgloss.Green.Render(fmt.Sprintf("Moved %d entries out of %s", result.MovedEntries, result.MirrorDir)))

	if result.IndexConflict {
		fmt.Println(lipgloss.Green.Render(fmt.Sprintf("Index conflict resolved (%s), backup saved as %s", result.IndexClass, result.BackupFile)))
	}
	if result.NeedsManualReview {
		rootDependencies.Reporter.ManualReview(fmt.Sprintf("index promotion was heuristic, check %s against index.html", result.BackupFile))
	}
	for _, name := range result.FailedEntries {
		rootDependencies.Reporter.ManualReview(fmt.Sprintf("entry %q could not be moved out of %s", name, result.MirrorDir))
	}
	if !result.MirrorDirRemoved && len(result.FailedEntries) == 0 {
		fmt.Println(lipgloss.Yellow.Render(fmt.Sprintf("%s was left in place", result.MirrorDir)))
	}
}
