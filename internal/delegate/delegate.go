// Package delegate wraps the external version managers devman relies on for
// node and python. Each delegate is an opaque program with its own install,
// use, list, and uninstall surface; devman only shells out and relays
// results. Output scraping stays inside the adapters so the rest of the
// code sees a plain capability interface.
package delegate

import (
	"context"
	"errors"
)

// ErrMissing indicates the delegate program is not present on this machine.
var ErrMissing = errors.New("delegate tool not installed")

// Manager is the capability surface devman needs from a delegate.
type Manager interface {
	// Name is the managed tool name (node, python).
	Name() string
	// Available reports whether the delegate program can be invoked.
	Available() bool
	// InstallHint is a one-line suggestion shown when the delegate is missing.
	InstallHint() string
	// Install installs a version through the delegate.
	Install(ctx context.Context, spec string) error
	// Activate selects a version and returns the shell snippet that
	// re-initializes the delegate's runtime hook in the caller's session.
	Activate(ctx context.Context, spec string) ([]string, error)
	// List returns the delegate's installed versions.
	List(ctx context.Context) ([]string, error)
	// Remove uninstalls a version through the delegate. Confirmation is the
	// caller's responsibility.
	Remove(ctx context.Context, spec string) error
}
