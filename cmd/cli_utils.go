// Package cmd holds the terminal helpers the command line tools share.
package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/crypto/ssh/terminal"
)

// AskForConfirmation asks the user for confirmation. The user must type in "yes" or "no" and
// then press enter. It has fuzzy matching, so "y", "Y", "yes", "YES", and "Yes" all count as
// confirmations. If the input is not recognized, it will ask again. The function returns false
// if the input ends before it gets a valid response.
func AskForConfirmation(in io.Reader, out io.Writer, s string) bool {
	scanner := bufio.NewScanner(in)
	msg := fmt.Sprintf("%s [y/n]?: ", s)
	for fmt.Fprint(out, msg); scanner.Scan(); fmt.Fprint(out, msg) {
		response := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if response == "y" || response == "yes" {
			return true
		} else if response == "n" || response == "no" {
			return false
		}
	}
	return false
}

// ReadHidden prints the prompt to stderr and reads a line from the terminal without echoing it,
// so the start positions do not end up on the screen or in the shell history.
func ReadHidden(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	b, err := terminal.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", err
	}
	value := strings.TrimSpace(string(b))
	if value == "" {
		return "", fmt.Errorf("nothing has been entered")
	}
	return value, nil
}
