package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/HeshanSudarshana/devtool-manager/internal/tui"
)

// toolReport is one row of doctor output.
type toolReport struct {
	Tool      string `json:"tool"`
	Delegated bool   `json:"delegated"`
	Installed int    `json:"installed"`
	Active    string `json:"active,omitempty"`
	Available bool   `json:"available"`
	Hint      string `json:"hint,omitempty"`
}

func newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Report store and delegate health for every managed tool",
		RunE:  runDoctor,
	}
}

func runDoctor(cmd *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	reports := []toolReport{}
	for _, tool := range managedToolOrder() {
		if d, ok := a.delegateFor(tool); ok {
			report := toolReport{Tool: tool, Delegated: true, Available: d.Available()}
			if !report.Available {
				report.Hint = d.InstallHint()
			}
			reports = append(reports, report)
			continue
		}

		entries, err := a.mgr.List(tool)
		if err != nil {
			return err
		}
		report := toolReport{Tool: tool, Installed: len(entries), Available: true}
		for _, e := range entries {
			if e.Active {
				report.Active = e.Version
			}
		}
		reports = append(reports, report)
	}

	if outputJSON {
		data, err := json.MarshalIndent(reports, "", "  ")
		if err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Println(tui.HeaderStyle.Render(fmt.Sprintf("%-8s %-10s %-10s %s", "Tool", "Kind", "Installed", "Active")))
	for _, r := range reports {
		kind := "managed"
		if r.Delegated {
			kind = "delegate"
		}
		installed := fmt.Sprintf("%d", r.Installed)
		if r.Delegated {
			installed = "-"
			if !r.Available {
				installed = "missing"
			}
		}
		active := r.Active
		if active == "" {
			active = "-"
		}
		cmd.Printf("%-8s %-10s %-10s %s\n", r.Tool, kind, installed, active)
		if r.Hint != "" {
			cmd.Printf("  hint: %s\n", r.Hint)
		}
	}
	cmd.Printf("\nstore: %s\nenv file: %s\n", a.mgr.Layout.StoreRoot, a.mgr.Layout.EnvFile)
	return nil
}

func managedToolOrder() []string {
	return []string{"java", "maven", "gradle", "go", "node", "python"}
}
