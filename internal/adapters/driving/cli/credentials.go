package cli

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// promptPassword returns a PasswordPrompt reading from the command's input.
func promptPassword(cmd *cobra.Command) PasswordPrompt {
	return func(label string) (string, error) {
		cmd.Printf("%s: ", label)
		password, err := readPassword(cmd.InOrStdin())
		cmd.Println()
		return password, err
	}
}

// readPassword reads a line without echo when in is a terminal.
func readPassword(in io.Reader) (string, error) {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		password, err := term.ReadPassword(int(f.Fd()))
		if err == nil {
			return string(password), nil
		}
	}
	// Fallback to regular input
	reader := bufio.NewReader(in)
	input, err := reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	return strings.TrimSpace(input), nil
}
