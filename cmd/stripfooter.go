package cmd

import (
	"fmt"

	"mirrortidy/constants/lipgloss"
	"mirrortidy/transformer"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// stripFooterCmd: mirrortidy strip-footer
var stripFooterCmd = &cobra.Command{
	Use:   "strip-footer [root]",
	Short: "Remove the marked footer block from every page.",
	Long: `The 'strip-footer' subcommand strips the footer block identified by the
configured marker class from every HTML page. When the footer contains the
embedded Google Translate widget, the widget is preserved and re-inserted in
a plain bar immediately before the closing body tag.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		rootDependencies := handleRootCommand(cmd)
		if rootDependencies == nil {
			return
		}
		handleStripFooterCommand(rootDependencies, args)
	},
}

func init() {
	rootCmd.AddCommand(stripFooterCmd)
}

func handleStripFooterCommand(rootDependencies *RootDependencies, args []string) {
	rootDir := resolveRootDir(args, rootDependencies)

	spinner := pterm.DefaultSpinner.WithStyle(pterm.NewStyle(pterm.FgLightBlue)).WithSequence("⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏").WithDelay(100).WithRemoveWhenDone(true)

	spinnerScan, _ := spinner.Start("Scanning pages...")
	scan, err := rootDependencies.Scanner.ScanHTMLFiles(rootDir)
	spinnerScan.Stop()
	fmt.Print("\r")

	if err != nil {
		fmt.Println(lipgloss.Red.Render(fmt.Sprintf("%v", err)))
		return
	}

	transformPages(rootDependencies, scan.Pages, transformer.NewFooterStripper(rootDependencies.Config.FooterMarker))

	rootDependencies.Reporter.DisplaySummary("strip-footer")
}
