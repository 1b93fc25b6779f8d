// Package tui renders live progress for the pull command using bubbletea.
// Output goes to the diagnostic stream; machine-readable channels are never
// routed through here.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const tickInterval = 150 * time.Millisecond

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// tickMsg drives the spinner animation.
type tickMsg time.Time

// StageMsg updates the displayed stage and detail for the pull in flight.
type StageMsg struct {
	Stage  string
	Detail string
}

// DoneMsg signals that the background work has completed.
type DoneMsg struct{}

// ErrorMsg signals a fatal error; the display quits and surfaces it.
type ErrorMsg struct {
	Err error
}

// PullModel is a bubbletea model showing a single tool install's progress.
type PullModel struct {
	tool   string
	spec   string
	stage  string
	detail string
	done   bool
	err    error
	tick   int
}

// NewPullModel creates a progress model for one tool install.
func NewPullModel(tool, spec string) PullModel {
	return PullModel{tool: tool, spec: spec, stage: "pending"}
}

func scheduleTick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Init satisfies the tea.Model interface.
func (m PullModel) Init() tea.Cmd {
	return scheduleTick()
}

// Update satisfies the tea.Model interface.
func (m PullModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.tick++
		if m.done {
			return m, nil
		}
		return m, scheduleTick()

	case StageMsg:
		m.stage = msg.Stage
		m.detail = msg.Detail
		return m, nil

	case DoneMsg:
		m.done = true
		return m, tea.Quit

	case ErrorMsg:
		m.err = msg.Err
		m.done = true
		return m, tea.Quit

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.done = true
			return m, tea.Quit
		}
	}
	return m, nil
}

// View satisfies the tea.Model interface.
func (m PullModel) View() string {
	var b strings.Builder
	b.WriteString(HeaderStyle.Render(fmt.Sprintf("pull %s %s", m.tool, m.spec)))
	b.WriteString("\n")

	marker := spinnerFrames[m.tick%len(spinnerFrames)]
	if m.done {
		marker = "✓"
		if m.err != nil {
			marker = "✗"
		}
	}

	line := fmt.Sprintf("%s %s", marker, StageStyle(m.stage).Render(m.stage))
	if m.detail != "" {
		line += " " + detailStyle.Render(m.detail)
	}
	b.WriteString(line)
	b.WriteString("\n")
	return b.String()
}

// Err returns the error that terminated the display, if any.
func (m PullModel) Err() error {
	return m.err
}
