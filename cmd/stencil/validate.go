// Validate command for the stencil CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var validateProjectFile string

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Resolve and validate the project descriptor without writing anything",
	RunE: func(cmd *cobra.Command, args []string) error {
		snap, err := resolveSnapshot(validateProjectFile)
		if err != nil {
			fmt.Fprintln(os.Stderr, "validate:", err)
			os.Exit(exitUserError)
		}

		if err := snap.Validate(); err != nil {
			fmt.Fprintln(os.Stderr, "validate:", err)
			os.Exit(exitUserError)
		}

		fmt.Printf("%s: descriptor valid (fingerprint %s)\n", snap.Namespace(), snap.Fingerprint())
		return nil
	},
}

func init() {
	validateCmd.Flags().StringVar(&validateProjectFile, "project-file", defaultProjectFile, "project descriptor file")
}
