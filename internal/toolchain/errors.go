package toolchain

import (
	"errors"
	"fmt"

	"github.com/HeshanSudarshana/devtool-manager/internal/store"
	"github.com/HeshanSudarshana/devtool-manager/internal/version"
)

var (
	// ErrUnknownTool marks a name outside the managed-tool enumeration.
	ErrUnknownTool = errors.New("unknown tool")
	// ErrDelegated marks an operation routed to a tool that an external
	// version manager owns.
	ErrDelegated = errors.New("tool is managed by a delegate")
	// ErrNetwork wraps remote index or artifact transfer failures.
	ErrNetwork = errors.New("network failure")
	// ErrArchive wraps corrupt or incomplete archive extraction.
	ErrArchive = errors.New("archive extraction failure")

	// ErrNotInstalled re-exports the store sentinel for callers that only
	// import toolchain.
	ErrNotInstalled = store.ErrNotInstalled
	// ErrNoMatch re-exports the resolver sentinel.
	ErrNoMatch = version.ErrNoMatch
)

// ResolutionError reports a specifier that matched nothing in the store and
// carries the installed list so callers can print a remediation hint.
type ResolutionError struct {
	Tool      string
	Spec      string
	Installed []string
}

// Error implements error.
func (e *ResolutionError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Tool, e.Spec, ErrNotInstalled)
}

// Unwrap lets errors.Is see ErrNotInstalled.
func (e *ResolutionError) Unwrap() error {
	return ErrNotInstalled
}
