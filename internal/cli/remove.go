package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func newRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <tool> <version>",
		Short: "Remove an installed tool version",
		Args:  cobra.ExactArgs(2),
		RunE:  runRemove,
	}
}

func runRemove(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	tool, ver := args[0], args[1]
	if err := knownToolArg(tool); err != nil {
		return err
	}

	if d, ok := a.delegateFor(tool); ok {
		if err := requireDelegate(d); err != nil {
			return err
		}
		ok, err := a.confirm(fmt.Sprintf("Remove %s %s via %s?", tool, ver, d.Name()))
		if err != nil {
			return err
		}
		if !ok {
			a.log.Infof("kept %s %s", tool, ver)
			return nil
		}
		ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
		defer cancel()
		return d.Remove(ctx, ver)
	}

	return a.mgr.Remove(tool, ver)
}
