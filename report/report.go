package report

import (
	"fmt"
	"strings"

	"mirrortidy/constants/lipgloss"
	"mirrortidy/report/contracts"
)

// runReporter implementation
type runReporter struct {
	processedFiles int
	changedFiles   int
	failedFiles    int
	advisories     []string
}

// NewRunReporter creates a new run reporter
func NewRunReporter() contracts.IRunReporter {
	return &runReporter{
		processedFiles: 0,
		changedFiles:   0,
		failedFiles:    0,
	}
}

func (rr *runReporter) FileProcessed() {
	rr.processedFiles++
}

func (rr *runReporter) FileChanged() {
	rr.changedFiles++
}

func (rr *runReporter) FileFailed() {
	rr.failedFiles++
}

func (rr *runReporter) ManualReview(note string) {
	rr.advisories = append(rr.advisories, note)
}

func (rr *runReporter) Counts() (int, int, int) {
	return rr.processedFiles, rr.changedFiles, rr.failedFiles
}

// DisplaySummary renders the final counts for the run inside a styled box,
// followed by any manual-review advisories.
func (rr *runReporter) DisplaySummary(commandName string) {
	summary := fmt.Sprintf("%s - Processed: %d - Changed: %d - Errors: %d",
		commandName, rr.processedFiles, rr.changedFiles, rr.failedFiles)

	summaryBox := lipgloss.BoxStyle.Render(summary)
	fmt.Println(summaryBox)

	if len(rr.advisories) > 0 {
		fmt.Println(lipgloss.Yellow.Render("Manual review suggested:"))
		fmt.Println(lipgloss.Yellow.Render("  - " + strings.Join(rr.advisories, "\n  - ")))
	}
}

func (rr *runReporter) Reset() {
	rr.processedFiles = 0
	rr.changedFiles = 0
	rr.failedFiles = 0
	rr.advisories = nil
}
