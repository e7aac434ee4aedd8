// Package engine defines the generation engine contract and the registry
// through which runners obtain a concrete engine. Output formats belong to
// the engine, identified by name and version; callers treat them as opaque.
// See docs/ARCHITECTURE.md § Generation Engine.
package engine

import (
	"github.com/mesh-intelligence/stencil/pkg/descriptor"
)

// Engine renders a resolved descriptor snapshot into a fixed set of project
// artifacts under an output directory.
//
// Implementations must:
//   - validate the snapshot first and return a validation error without
//     writing anything when it is structurally invalid;
//   - produce byte-identical output for a fixed snapshot and engine version
//     (idempotent regeneration);
//   - write only files inside their declared output set, never deleting
//     anything outside it.
type Engine interface {
	// Name identifies the engine in configuration and diagnostics.
	Name() string

	// Version identifies the output format revision. Bump it whenever the
	// rendered bytes change for an unchanged snapshot.
	Version() string

	// Generate renders all artifacts for the snapshot into outDir.
	Generate(snap descriptor.Snapshot, outDir string) (*Result, error)
}

// Result reports what a generation run produced.
type Result struct {
	// Engine and EngineVersion echo the engine that ran.
	Engine        string
	EngineVersion string

	// Files lists the written artifacts as paths relative to the output
	// directory, in render order.
	Files []string
}
