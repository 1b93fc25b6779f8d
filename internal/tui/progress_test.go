package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestPullModelStageTransitions(t *testing.T) {
	m := NewPullModel("go", "1.21")

	updated, _ := m.Update(StageMsg{Stage: "downloading", Detail: "go1.21.10.tar.gz"})
	m = updated.(PullModel)
	view := m.View()
	if !strings.Contains(view, "downloading") {
		t.Fatalf("view missing stage: %q", view)
	}
	if !strings.Contains(view, "go1.21.10.tar.gz") {
		t.Fatalf("view missing detail: %q", view)
	}
}

func TestPullModelDoneQuits(t *testing.T) {
	m := NewPullModel("go", "1.21")
	updated, cmd := m.Update(DoneMsg{})
	m = updated.(PullModel)
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if !strings.Contains(m.View(), "✓") {
		t.Fatalf("done view missing check mark: %q", m.View())
	}
}

func TestPullModelErrorSurfaces(t *testing.T) {
	m := NewPullModel("go", "1.21")
	fail := errors.New("download failed")
	updated, _ := m.Update(ErrorMsg{Err: fail})
	m = updated.(PullModel)
	if !errors.Is(m.Err(), fail) {
		t.Fatalf("Err() = %v, want %v", m.Err(), fail)
	}
	if !strings.Contains(m.View(), "✗") {
		t.Fatalf("error view missing cross mark: %q", m.View())
	}
}

func TestPullModelQuitKey(t *testing.T) {
	m := NewPullModel("go", "1.21")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("expected quit on ctrl+c")
	}
}
