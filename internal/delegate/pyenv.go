package delegate

import (
	"context"
	"fmt"
	"strings"
)

// Pyenv adapts the pyenv version manager for python. Unlike nvm it is a
// plain executable, so invocations go straight through the runner.
type Pyenv struct {
	Command string
	runner  Runner
}

// NewPyenv creates the python delegate. command defaults to "pyenv".
func NewPyenv(command string, runner Runner) *Pyenv {
	if command == "" {
		command = "pyenv"
	}
	return &Pyenv{Command: command, runner: runner}
}

// Name implements Manager.
func (p *Pyenv) Name() string { return "python" }

// Available implements Manager.
func (p *Pyenv) Available() bool {
	_, err := p.runner.LookPath(p.Command)
	return err == nil
}

// InstallHint implements Manager.
func (p *Pyenv) InstallHint() string {
	return "install pyenv from https://github.com/pyenv/pyenv#installation"
}

func (p *Pyenv) require() error {
	if !p.Available() {
		return fmt.Errorf("%s not found on PATH: %w", p.Command, ErrMissing)
	}
	return nil
}

// Install implements Manager. -s skips versions pyenv already has.
func (p *Pyenv) Install(ctx context.Context, spec string) error {
	if err := p.require(); err != nil {
		return err
	}
	return p.runner.Run(ctx, p.Command, "install", "-s", spec)
}

// Activate implements Manager. pyenv's selection lives in its shim
// initialization, so the snippet re-runs `pyenv init` in the caller's
// shell. Every line references PYENV_ROOT so the env file store can prune
// the whole block on the next activation.
func (p *Pyenv) Activate(ctx context.Context, spec string) ([]string, error) {
	if err := p.require(); err != nil {
		return nil, err
	}
	if err := p.runner.Run(ctx, p.Command, "global", spec); err != nil {
		return nil, err
	}
	return []string{
		"export PYENV_ROOT=\"$HOME/.pyenv\"",
		"export PATH=\"$PYENV_ROOT/bin:$PATH\"",
		"eval \"$(\"$PYENV_ROOT/bin/pyenv\" init -)\"",
	}, nil
}

// List implements Manager.
func (p *Pyenv) List(ctx context.Context) ([]string, error) {
	if err := p.require(); err != nil {
		return nil, err
	}
	out, err := p.runner.Output(ctx, p.Command, "versions", "--bare")
	if err != nil {
		return nil, err
	}
	var versions []string
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			versions = append(versions, line)
		}
	}
	return versions, nil
}

// Remove implements Manager. Confirmation already happened upstream, so -f
// suppresses pyenv's own prompt.
func (p *Pyenv) Remove(ctx context.Context, spec string) error {
	if err := p.require(); err != nil {
		return err
	}
	return p.runner.Run(ctx, p.Command, "uninstall", "-f", spec)
}
