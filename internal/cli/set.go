package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/HeshanSudarshana/devtool-manager/internal/envfile"
	"github.com/HeshanSudarshana/devtool-manager/internal/toolchain"
)

func newSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <tool> <version>",
		Short: "Activate an installed tool version",
		Long: "set rewrites the persistent environment file and prints the same\n" +
			"assignments on stdout so a shell wrapper can eval them. All\n" +
			"diagnostics go to stderr; stdout carries only shell text.",
		Args: cobra.ExactArgs(2),
		RunE: runSet,
	}
}

func runSet(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	tool, spec := args[0], args[1]
	if err := knownToolArg(tool); err != nil {
		return err
	}

	if d, ok := a.delegateFor(tool); ok {
		if err := requireDelegate(d); err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
		defer cancel()

		lines, err := d.Activate(ctx, spec)
		if err != nil {
			return err
		}
		// The persisted file and the echoed lines must stay identical, so
		// new shell sessions get the delegate's re-init hook too.
		def, _ := toolchain.Lookup(tool)
		block := envfile.Block{Tool: tool, Families: def.Families, Lines: lines}
		if err := a.mgr.Env.Apply(block); err != nil {
			return err
		}
		a.log.Debugf("env file %s updated for %s %s", a.mgr.Layout.EnvFile, tool, spec)
		emit(lines)
		return nil
	}

	block, resolved, err := a.mgr.Activate(tool, spec)
	if err != nil {
		var resErr *toolchain.ResolutionError
		if errors.As(err, &resErr) {
			printInstalledHint(a, resErr)
		}
		return err
	}

	a.log.Debugf("env file %s updated for %s %s", a.mgr.Layout.EnvFile, tool, resolved)
	emit(block.Lines)
	return nil
}

// emit writes shell assignment text to stdout, the machine-readable
// channel.
func emit(lines []string) {
	for _, line := range lines {
		fmt.Fprintln(os.Stdout, line)
	}
}

func printInstalledHint(a *app, resErr *toolchain.ResolutionError) {
	if len(resErr.Installed) == 0 {
		a.log.Warnf("no %s versions installed; run: devman pull %s <version>", resErr.Tool, resErr.Tool)
		return
	}
	a.log.Warnf("installed %s versions:", resErr.Tool)
	for _, v := range resErr.Installed {
		a.log.Warnf("  %s", v)
	}
}
