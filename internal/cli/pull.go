package cli

import (
	"context"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/HeshanSudarshana/devtool-manager/internal/toolchain"
	"github.com/HeshanSudarshana/devtool-manager/internal/tui"
)

var (
	pullForce      bool
	pullNoProgress bool
)

func newPullCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pull <tool> [version|latest]",
		Short: "Download and install a tool version",
		Args:  cobra.RangeArgs(1, 2),
		RunE:  runPull,
	}

	cmd.Flags().BoolVar(&pullForce, "force", false, "Overwrite an existing install without prompting")
	cmd.Flags().BoolVar(&pullNoProgress, "no-progress", false, "Disable the live progress display")

	return cmd
}

func runPull(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	tool := args[0]
	spec := "latest"
	if len(args) == 2 {
		spec = args[1]
	}
	if err := knownToolArg(tool); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Minute)
	defer cancel()

	if d, ok := a.delegateFor(tool); ok {
		if err := requireDelegate(d); err != nil {
			return err
		}
		a.log.Infof("delegating %s install to %s", tool, d.Name())
		return d.Install(ctx, spec)
	}

	opts := toolchain.InstallOptions{Force: pullForce}

	if !tui.Interactive(os.Stderr, pullNoProgress) {
		_, err := a.mgr.Install(ctx, tool, spec, opts)
		return err
	}

	model := tui.NewPullModel(tool, spec)
	return tui.RunWithWork(os.Stderr, model, func(send func(tea.Msg)) {
		a.mgr.Progress = func(stage toolchain.Stage, detail string) {
			send(tui.StageMsg{Stage: string(stage), Detail: detail})
		}
		if _, err := a.mgr.Install(ctx, tool, spec, opts); err != nil {
			send(tui.ErrorMsg{Err: err})
		}
	})
}
