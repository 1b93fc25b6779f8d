package delegate

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Runner executes delegate commands. The exec-backed implementation is the
// default; tests inject a fake.
type Runner interface {
	// Run executes a command, relaying its output to the diagnostic stream.
	Run(ctx context.Context, name string, args ...string) error
	// Output executes a command and captures stdout.
	Output(ctx context.Context, name string, args ...string) (string, error)
	// LookPath reports where a program resolves on PATH.
	LookPath(name string) (string, error)
}

// ExecRunner runs commands through os/exec. Delegate stdout joins stderr so
// the machine-readable channel stays clean.
type ExecRunner struct{}

// Run implements Runner.
func (ExecRunner) Run(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = os.Stderr
	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s %s: %w", name, strings.Join(args, " "), err)
	}
	return nil
}

// Output implements Runner.
func (ExecRunner) Output(ctx context.Context, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stderr = os.Stderr
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("%s %s: %w", name, strings.Join(args, " "), err)
	}
	return string(out), nil
}

// LookPath implements Runner.
func (ExecRunner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}
