// Config command for the stencil CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the resolved configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, "resolve config dir:", err)
			os.Exit(exitSysError)
		}
		outDir, err := resolveOutDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, "resolve out dir:", err)
			os.Exit(exitSysError)
		}

		fmt.Println("config_dir:", configDir)
		fmt.Println("out_dir:", outDir)
		fmt.Println("engine:", configEngine)
		fmt.Println("profile:", configProfile)
		return nil
	},
}
