// Root command for the datakit CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/datakit/internal/paths"
	"github.com/mesh-intelligence/datakit/pkg/datakit"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagBackend   string
)

// Values loaded from config.yaml. Set by PersistentPreRunE so all
// subcommands can use them.
var (
	configDataDir string
	configBackend string
)

var rootCmd = &cobra.Command{
	Use:     "datakit",
	Short:   "Datakit parses, validates and stores tabular data",
	Version: datakit.Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}

		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}

		configDataDir = cfg.GetString(cfgKeyDataDir)
		configBackend = cfg.GetString(cfgKeyBackend)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: $(CWD)/.datakit)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: $(CWD)/.datakit-db)")
	rootCmd.PersistentFlags().StringVar(&flagBackend, "backend", "", "storage backend: jsonl or sqlite (default: from config.yaml)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(datasetCmd)
}

// resolveDataDir returns the data directory path following the precedence
// --data-dir flag > config.yaml data_dir > DATAKIT_DATA_DIR env > default.
func resolveDataDir() (string, error) {
	return paths.ResolveDataDir(flagDataDir, configDataDir)
}

// resolveConfigDir returns the configuration directory following the
// precedence --config-dir flag > DATAKIT_CONFIG_DIR env > platform default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}

// resolveBackend returns the backend name, flag over config.yaml.
func resolveBackend() string {
	if flagBackend != "" {
		return flagBackend
	}
	return configBackend
}
