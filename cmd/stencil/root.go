// Root command for the stencil CLI.
package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/stencil/internal/paths"
	"github.com/mesh-intelligence/stencil/pkg/stencil"
)

// Exit codes. User errors cover invalid descriptors and bad flags; system
// errors cover missing engines, unreadable config, and write failures.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// Global flag values.
var (
	flagConfigDir string
	flagOutDir    string
	flagVerbose   bool
)

// logger is the process-wide diagnostic logger, configured by
// PersistentPreRunE before any subcommand runs.
var logger = zerolog.Nop()

// Configuration values loaded from config.yaml. Set by PersistentPreRunE so
// all subcommands can use them.
var (
	configEngine  string
	configProfile string
	configOutDir  string
)

var rootCmd = &cobra.Command{
	Use:     "stencil",
	Short:   "Stencil generates project metadata artifacts from a declarative descriptor",
	Version: stencil.Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := zerolog.InfoLevel
		if flagVerbose {
			level = zerolog.DebugLevel
		}
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(level).
			With().Timestamp().Logger()

		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}

		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}

		configEngine = cfg.GetString(cfgKeyEngine)
		configProfile = cfg.GetString(cfgKeyProfile)
		configOutDir = cfg.GetString(cfgKeyOutDir)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagOutDir, "out", "", "artifact output directory (default: $(CWD))")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "enable debug logging")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(configCmd)
}

// resolveConfigDir returns the configuration directory following the
// precedence: --config-dir flag > STENCIL_CONFIG_DIR env > platform default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}

// resolveOutDir returns the output directory following the precedence:
// --out flag > config.yaml out_dir > STENCIL_OUT_DIR env > CWD.
func resolveOutDir() (string, error) {
	return paths.ResolveOutDir(flagOutDir, configOutDir)
}
