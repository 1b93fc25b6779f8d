// Package cli wires the devman command tree. Each subcommand lives in its
// own file; Execute is the only entry point.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/HeshanSudarshana/devtool-manager/internal/config"
	"github.com/HeshanSudarshana/devtool-manager/internal/delegate"
	"github.com/HeshanSudarshana/devtool-manager/internal/logx"
	"github.com/HeshanSudarshana/devtool-manager/internal/paths"
	"github.com/HeshanSudarshana/devtool-manager/internal/prompt"
	"github.com/HeshanSudarshana/devtool-manager/internal/toolchain"
)

var (
	rootDir    string
	outputJSON bool
	assumeYes  bool
	verbose    bool
)

// Execute runs the root cobra command.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "devman",
		Short: "Developer toolchain version manager",
		Long: "devman installs, activates, lists, and removes versions of JDK, Maven,\n" +
			"Gradle, and Go, and delegates node/python to nvm and pyenv.",
	}

	cmd.PersistentFlags().StringVar(&rootDir, "root", "", "Path to the devman home directory")
	cmd.PersistentFlags().BoolVar(&outputJSON, "json", false, "Output machine-readable JSON")
	cmd.PersistentFlags().BoolVarP(&assumeYes, "yes", "y", false, "Answer yes to all confirmation prompts")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose diagnostics")

	cmd.AddCommand(newPullCmd())
	cmd.AddCommand(newSetCmd())
	cmd.AddCommand(newListCmd())
	cmd.AddCommand(newRemoveCmd())
	cmd.AddCommand(newDoctorCmd())

	return cmd
}

// app bundles the resolved layout, settings, and managers every command
// needs.
type app struct {
	layout  paths.Layout
	cfg     config.Config
	log     *logx.Logger
	confirm prompt.Confirmer
	mgr     *toolchain.Manager
}

func newApp() (*app, error) {
	layout, err := paths.Resolve(rootDir)
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(layout.ConfigFile)
	if err != nil {
		return nil, err
	}

	confirm := prompt.Terminal()
	if assumeYes {
		confirm = prompt.Auto(true)
	}
	log := logx.New(verbose)

	return &app{
		layout:  layout,
		cfg:     cfg,
		log:     log,
		confirm: confirm,
		mgr:     toolchain.NewManager(layout, cfg, confirm, log),
	}, nil
}

// delegateFor returns the external manager adapter for delegated tools.
func (a *app) delegateFor(tool string) (delegate.Manager, bool) {
	switch tool {
	case "node":
		return delegate.NewNVM(a.cfg.Delegates.NodeDir, delegate.ExecRunner{}), true
	case "python":
		return delegate.NewPyenv(a.cfg.Delegates.PythonCommand, delegate.ExecRunner{}), true
	default:
		return nil, false
	}
}

func requireDelegate(d delegate.Manager) error {
	if d.Available() {
		return nil
	}
	return fmt.Errorf("%s delegate unavailable (%s): %w", d.Name(), d.InstallHint(), delegate.ErrMissing)
}

func knownToolArg(tool string) error {
	if _, ok := toolchain.Lookup(tool); !ok {
		return fmt.Errorf("%s: %w", tool, toolchain.ErrUnknownTool)
	}
	return nil
}
