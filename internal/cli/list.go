package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/HeshanSudarshana/devtool-manager/internal/toolchain"
	"github.com/HeshanSudarshana/devtool-manager/internal/tui"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list <tool>",
		Short: "List installed versions of a tool",
		Args:  cobra.ExactArgs(1),
		RunE:  runList,
	}
}

func runList(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	tool := args[0]
	if err := knownToolArg(tool); err != nil {
		return err
	}

	var entries []toolchain.Entry

	if d, ok := a.delegateFor(tool); ok {
		if err := requireDelegate(d); err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
		defer cancel()

		versions, err := d.List(ctx)
		if err != nil {
			return err
		}
		for _, v := range versions {
			entries = append(entries, toolchain.Entry{Version: v})
		}
	} else {
		entries, err = a.mgr.List(tool)
		if err != nil {
			return err
		}
	}

	if outputJSON {
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if len(entries) == 0 {
		cmd.Println("(none installed)")
		return nil
	}
	for _, e := range entries {
		if e.Active {
			cmd.Println(tui.ActiveStyle.Render("* " + e.Version + " (active)"))
			continue
		}
		cmd.Printf("  %s\n", e.Version)
	}
	return nil
}
