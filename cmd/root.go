package cmd

import (
	"fmt"
	"os"

	"mirrortidy/config"
	"mirrortidy/constants/lipgloss"
	"mirrortidy/report"
	contracts_report "mirrortidy/report/contracts"
	"mirrortidy/site_scanner"
	contracts_scanner "mirrortidy/site_scanner/contracts"
	"mirrortidy/site_scanner/models"
	contracts_transformer "mirrortidy/transformer/contracts"
	"mirrortidy/utils"

	"github.com/spf13/cobra"
)

// RootDependencies holds the dependencies shared by every subcommand.
type RootDependencies struct {
	Cwd      string
	Config   *config.Config
	Scanner  contracts_scanner.ISiteScanner
	Reporter contracts_report.IRunReporter
}

// rootCmd: mirrortidy
var rootCmd = &cobra.Command{
	Use:   "mirrortidy",
	Short: "Tidy up a statically mirrored website.",
	Long: `mirrortidy reorganizes the output of an offline site-mirroring tool.
'fix-paths' flattens the duplicated domain directory the mirroring process
nests the site under and rewrites the relative link prefixes accordingly.
'strip-footer' removes a fixed footer block from every page while keeping the
embedded translation widget. 'audit' reports local links whose targets are
missing after a fix.`,
	Run: func(cmd *cobra.Command, args []string) {
		if version, _ := cmd.Flags().GetBool("version"); version {
			fmt.Println(config.DefaultConfig.Version)
			return
		}
		_ = cmd.Help()
	},
}

func init() {
	config.InitFlags(rootCmd)
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(lipgloss.Red.Render(fmt.Sprintf("%v", err)))
		os.Exit(1)
	}
}

func handleRootCommand(cmd *cobra.Command) *RootDependencies {
	cwd, err := os.Getwd()
	if err != nil {
		fmt.Println(lipgloss.Red.Render(fmt.Sprintf("Error getting current directory: %v", err)))
		return nil
	}

	cfg := config.LoadConfigWithCache(cmd.Root(), cwd)

	return &RootDependencies{
		Cwd:      cwd,
		Config:   cfg,
		Scanner:  site_scanner.NewSiteScanner(),
		Reporter: report.NewRunReporter(),
	}
}

// resolveRootDir picks the site root: the single positional argument when
// given, the working directory otherwise.
func resolveRootDir(args []string, deps *RootDependencies) string {
	if len(args) > 0 {
		return args[0]
	}
	return deps.Cwd
}

// transformPages runs one transformer over every scanned page. Per-file
// failures are logged and counted; the loop never aborts.
func transformPages(deps *RootDependencies, pages []models.PageFile, pageTransformer contracts_transformer.IPageTransformer) {
	for _, page := range pages {
		deps.Reporter.FileProcessed()

		original, err := os.ReadFile(page.AbsolutePath)
		if err != nil {
			fmt.Println(lipgloss.Red.Render(fmt.Sprintf("Failed to read %s: %v", page.RelativePath, err)))
			deps.Reporter.FileFailed()
			continue
		}

		updated := pageTransformer.Transform(page, string(original))

		changed, err := utils.WriteFileIfChanged(page.AbsolutePath, original, []byte(updated))
		if err != nil {
			fmt.Println(lipgloss.Red.Render(fmt.Sprintf("Failed to write %s: %v", page.RelativePath, err)))
			deps.Reporter.FileFailed()
			continue
		}

		if changed {
			deps.Reporter.FileChanged()
			if deps.Config.Verbose {
				utils.RenderChangedLines(page.RelativePath, string(original), updated, deps.Config.Theme)
			}
		}
	}
}
