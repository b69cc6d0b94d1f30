package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Yanthir84/PawRun/internal/config"
)

var flagConfigWrite string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default game config",
	Long: `Print the default runner configuration as YAML.

Use --write to save it as a starting point for a custom config, then pass
the edited file to 'pawrun play --config'.

Examples:
  pawrun config
  pawrun config --write ./my-runner.yaml
  pawrun play --config ./my-runner.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagConfigWrite, "write", "", "Write the default config to the given path")
}

func runConfig(cmd *cobra.Command, args []string) {
	data := config.GetDefaultYAML()

	if flagConfigWrite == "" {
		os.Stdout.Write(data)
		return
	}

	// Never clobber an existing config
	if _, err := os.Stat(flagConfigWrite); err == nil {
		fmt.Fprintf(os.Stderr, "Error: %s already exists\n", flagConfigWrite)
		os.Exit(1)
	}

	if dir := filepath.Dir(flagConfigWrite); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			fmt.Fprintf(os.Stderr, "Error creating directory: %v\n", err)
			os.Exit(1)
		}
	}

	if err := os.WriteFile(flagConfigWrite, data, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing config: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote default config to %s\n", flagConfigWrite)
	fmt.Printf("Edit it and play with: pawrun play --config %s\n", flagConfigWrite)
}
