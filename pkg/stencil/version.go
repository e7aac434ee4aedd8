// Package stencil exposes tool-level metadata shared by the CLI and build
// tooling.
package stencil

// Version is the stencil tool version, set here and stamped into release
// binaries by the build targets.
const Version = "0.1.0"
