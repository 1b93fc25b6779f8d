// Package prompt provides the confirmation capability used before
// destructive or overwriting operations. Commands receive a Confirmer so
// tests and the --yes flag substitute a fixed answer for the terminal read.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Confirmer asks the user a yes/no question and reports the answer.
type Confirmer func(question string) (bool, error)

// Terminal returns a Confirmer that writes the question to stderr and reads
// one line from stdin. Only "y" or "yes" (case-insensitive) confirm.
func Terminal() Confirmer {
	return Reader(os.Stdin, os.Stderr)
}

// Reader builds a Confirmer over explicit streams.
func Reader(in io.Reader, out io.Writer) Confirmer {
	reader := bufio.NewReader(in)
	return func(question string) (bool, error) {
		fmt.Fprintf(out, "%s [y/N]: ", question)
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return false, fmt.Errorf("read confirmation: %w", err)
		}
		answer := strings.ToLower(strings.TrimSpace(line))
		return answer == "y" || answer == "yes", nil
	}
}

// Auto returns a Confirmer that always answers the same way without
// prompting, used for --yes and in tests.
func Auto(answer bool) Confirmer {
	return func(string) (bool, error) {
		return answer, nil
	}
}
