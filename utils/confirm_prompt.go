package utils

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"mirrortidy/constants/lipgloss"
)

// ConfirmPrompt asks the user to approve an action before it runs.
// Anything other than "y"/"yes" is a rejection.
func ConfirmPrompt(message string, reader *bufio.Reader) (bool, error) {
	fmt.Print(lipgloss.BlueSky.Render(fmt.Sprintf("%s (y/N): ", message)))

	response, err := reader.ReadString('\n')
	if err != nil {
		if err == io.EOF {
			return false, nil
		}
		return false, fmt.Errorf("error reading input: %w", err)
	}

	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes", nil
}
