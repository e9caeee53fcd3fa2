package utils

import (
	"fmt"
	"os"
	"strings"

	"mirrortidy/constants/lipgloss"

	"github.com/alecthomas/chroma/v2/quick"
)

// maxPreviewLines caps the verbose preview so a fully rewritten page does not
// flood the terminal.
const maxPreviewLines = 12

// RenderChangedLines prints a highlighted preview of the lines that differ
// between the original and updated content of a page.
func RenderChangedLines(relativePath string, original string, updated string, theme string) {
	oldLines := strings.Split(original, "\n")
	newLines := strings.Split(updated, "\n")

	fmt.Println(lipgloss.BlueSky.Render(fmt.Sprintf("--- %s", relativePath)))

	shown := 0
	max := len(oldLines)
	if len(newLines) > max {
		max = len(newLines)
	}

	for i := 0; i < max && shown < maxPreviewLines; i++ {
		var oldLine, newLine string
		if i < len(oldLines) {
			oldLine = oldLines[i]
		}
		if i < len(newLines) {
			newLine = newLines[i]
		}
		if oldLine == newLine {
			continue
		}

		if oldLine != "" {
			fmt.Print(lipgloss.Red.Render("- "))
			renderHTMLLine(oldLine, theme)
		}
		if newLine != "" {
			fmt.Print(lipgloss.Green.Render("+ "))
			renderHTMLLine(newLine, theme)
		}
		shown++
	}

	if shown == maxPreviewLines {
		fmt.Println(lipgloss.Gray.Render("  ..."))
	}
}

// renderHTMLLine highlights a single HTML line, falling back to plain output
// when the highlighter cannot handle it.
func renderHTMLLine(line string, theme string) {
	if err := quick.Highlight(os.Stdout, line+"\n", "html", "terminal256", theme); err != nil {
		fmt.Println(line)
	}
}
