// Package descriptor defines the project descriptor model, base profiles,
// and the override mechanism that resolves a profile plus project-specific
// overrides into an immutable snapshot consumed by a generation engine.
// See docs/ARCHITECTURE.md § Descriptor Model.
package descriptor
