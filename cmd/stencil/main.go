// Package main provides the stencil CLI, a declarative project-metadata
// scaffolding tool. A project file plus a base profile resolve into one
// descriptor snapshot, and a generation engine renders that snapshot into
// the project's build, packaging, and documentation artifacts.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitUserError)
	}
}
