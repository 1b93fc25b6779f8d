package toolchain

import (
	"os"

	"github.com/HeshanSudarshana/devtool-manager/internal/config"
	"github.com/HeshanSudarshana/devtool-manager/internal/envfile"
	"github.com/HeshanSudarshana/devtool-manager/internal/logx"
	"github.com/HeshanSudarshana/devtool-manager/internal/paths"
	"github.com/HeshanSudarshana/devtool-manager/internal/prompt"
	"github.com/HeshanSudarshana/devtool-manager/internal/store"
)

// Stage identifies a phase of a long-running operation, reported through
// the progress callback so the CLI can render a live table.
type Stage string

const (
	StageResolving   Stage = "resolving"
	StageDownloading Stage = "downloading"
	StageExtracting  Stage = "extracting"
	StageDone        Stage = "done"
)

// ProgressFunc receives stage transitions during install.
type ProgressFunc func(stage Stage, detail string)

// Manager ties the store, the remote index, the env file, and the
// confirmation capability together for the non-delegated tools.
type Manager struct {
	Layout  paths.Layout
	Store   store.Store
	Index   *Index
	Env     *envfile.Store
	Confirm prompt.Confirmer
	Log     *logx.Logger

	// Getenv reads the live process environment; tests substitute a map.
	Getenv func(string) string
	// Progress is optional; nil disables stage reporting.
	Progress ProgressFunc
}

// NewManager builds a Manager over the resolved layout and settings.
func NewManager(layout paths.Layout, cfg config.Config, confirm prompt.Confirmer, log *logx.Logger) *Manager {
	if cfg.StoreRoot != "" {
		layout.StoreRoot = cfg.StoreRoot
	}
	if cfg.EnvFile != "" {
		layout.EnvFile = cfg.EnvFile
	}
	return &Manager{
		Layout:  layout,
		Store:   store.FromLayout(layout),
		Index:   NewIndex(cfg.Mirrors),
		Env:     envfile.NewStore(layout.EnvFile),
		Confirm: confirm,
		Log:     log,
		Getenv:  os.Getenv,
	}
}

func (m *Manager) progress(stage Stage, detail string) {
	if m.Progress != nil {
		m.Progress(stage, detail)
	}
}

func (m *Manager) definition(tool string) (Definition, error) {
	def, ok := Lookup(tool)
	if !ok {
		return Definition{}, &unknownToolError{tool}
	}
	if def.Delegated {
		return Definition{}, &delegatedToolError{tool}
	}
	return def, nil
}

type unknownToolError struct{ tool string }

func (e *unknownToolError) Error() string { return e.tool + ": unknown tool" }
func (e *unknownToolError) Unwrap() error { return ErrUnknownTool }

type delegatedToolError struct{ tool string }

func (e *delegatedToolError) Error() string { return e.tool + ": managed by a delegate" }
func (e *delegatedToolError) Unwrap() error { return ErrDelegated }
