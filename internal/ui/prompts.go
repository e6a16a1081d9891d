package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// In is where prompts read answers from.
var In io.Reader = os.Stdin

// AskYesNo prompts the user with a yes/no question.
// Returns true for y/yes, false for n/no, and defaultYes for an empty
// answer or when input is closed.
func AskYesNo(prompt string, defaultYes bool) bool {
	if defaultYes {
		_, _ = fmt.Fprintf(Out, "  %s [Y/n] ", prompt)
	} else {
		_, _ = fmt.Fprintf(Out, "  %s [y/N] ", prompt)
	}

	reader := bufio.NewReader(In)
	response, _ := reader.ReadString('\n')
	response = strings.TrimSpace(strings.ToLower(response))

	if response == "" {
		return defaultYes
	}

	return response == "y" || response == "yes"
}
