package formconfig

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned by FindGlobal when no global
	// configuration document exists.
	ErrNotFound = errors.New("formconfig: not found")
	// ErrAmbiguousConfig signals that more than one document claims
	// to be the active global configuration. Reads fail rather than
	// pick one arbitrarily.
	ErrAmbiguousConfig = errors.New("formconfig: multiple active global configurations")
	// ErrVersionConflict is returned when an upsert carries a stale
	// version token.
	ErrVersionConflict = errors.New("formconfig: version conflict")
)

// Store is the persistence contract for the single global form
// configuration. Implementations enforce that at most one document
// holds isGlobal and isActive simultaneously.
type Store interface {
	// ActiveGlobal returns the unique active global configuration,
	// or a synthesized DefaultConfig (not persisted) when none
	// exists. Returns ErrAmbiguousConfig when the uniqueness
	// invariant was violated upstream.
	ActiveGlobal(ctx context.Context) (FormConfig, error)
	// FindGlobal returns the global configuration regardless of its
	// active state. Returns ErrNotFound when no document exists.
	FindGlobal(ctx context.Context) (FormConfig, error)
	// UpsertGlobal replaces the mutable fields of the global
	// configuration with the patch contents, stamping audit fields
	// from actor, or creates an active document when none exists.
	// Top-level lists replace wholesale. A non-zero patch.Version
	// must match the stored version or ErrVersionConflict is
	// returned.
	UpsertGlobal(ctx context.Context, patch FormConfig, actor string) (FormConfig, error)
}
