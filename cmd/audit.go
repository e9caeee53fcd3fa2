package cmd

import (
	"fmt"
	"os"

	"mirrortidy/audit"
	"mirrortidy/constants/lipgloss"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// auditCmd: mirrortidy audit
var auditCmd = &cobra.Command{
	Use:   "audit [root]",
	Short: "Report local links whose targets are missing.",
	Long: `The 'audit' subcommand parses every HTML page, extracts href and src
attribute values, resolves the local ones against the directory tree, and
lists references whose target file does not exist. Pages are never modified.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		rootDependencies := handleRootCommand(cmd)
		if rootDependencies == nil {
			return
		}
		handleAuditCommand(rootDependencies, args)
	},
}

func init() {
	rootCmd.AddCommand(auditCmd)
}

func handleAuditCommand(rootDependencies *RootDependencies, args []string) {
	rootDir := resolveRootDir(args, rootDependencies)

	auditor, err := audit.NewLinkAuditor()
	if err != nil {
		fmt.Println(lipgloss.Red.Render(fmt.Sprintf("%v", err)))
		return
	}

	spinner := pterm.DefaultSpinner.WithStyle(pterm.NewStyle(pterm.FgLightBlue)).WithSequence("⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏").WithDelay(100).WithRemoveWhenDone(true)

	spinnerScan, _ := spinner.Start("Scanning pages...")
	scan, err := rootDependencies.Scanner.ScanHTMLFiles(rootDir)
	spinnerScan.Stop()
	fmt.Print("\r")

	if err != nil {
		fmt.Println(lipgloss.Red.Render(fmt.Sprintf("%v", err)))
		return
	}

	brokenTotal := 0
	for _, page := range scan.Pages {
		rootDependencies.Reporter.FileProcessed()

		source, err := os.ReadFile(page.AbsolutePath)
		if err != nil {
			fmt.Println(lipgloss.Red.Render(fmt.Sprintf("Failed to read %s: %v", page.RelativePath, err)))
			rootDependencies.Reporter.FileFailed()
			continue
		}

		for _, link := range auditor.AuditPage(rootDir, page, source) {
			fmt.Println(lipgloss.Yellow.Render(fmt.Sprintf("%s: %q has no target", link.Page, link.Reference)))
			brokenTotal++
		}
	}

	if brokenTotal == 0 {
		fmt.Println(lipgloss.Green.Render("No broken local links found."))
	} else {
		fmt.Println(lipgloss.Yellow.Render(fmt.Sprintf("%d broken local links found.", brokenTotal)))
	}

	rootDependencies.Reporter.DisplaySummary("audit")
}
