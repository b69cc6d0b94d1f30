// pawrun is a terminal endless runner: steer a stray cat through three lanes
// of city traffic, jump crates, slide under barriers and hoard coins.
//
// Usage:
//
//	pawrun play              - Start a run
//	pawrun list              - List available game modes
//	pawrun serve             - Start SSH server for remote play
//	pawrun scores [game]     - Show best runs
//	pawrun config            - Print the default game config
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible runs
//	--db <path>     - Set database path (default: ~/.pawrun/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register it
	_ "github.com/Yanthir84/PawRun/internal/game/runner"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pawrun",
	Short: "Paw Run - endless lane runner in your terminal",
	Long: `Paw Run is a terminal endless runner. The cat runs forward on its own;
you steer between three lanes, jump over crates and slide under barriers
while collecting coins. The run ends on the first unavoided obstacle.

Available commands:
  play     - Start a run
  list     - Show available game modes
  serve    - Start SSH server for remote play
  scores   - View best runs
  config   - Print the default game config

Examples:
  pawrun play
  pawrun play --difficulty hard
  pawrun play --seed 42
  pawrun serve --ssh :2222
  pawrun scores run`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.pawrun/runs.db", "Path to runs database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
