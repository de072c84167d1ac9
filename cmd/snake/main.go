// snake is the Purple Snake game for terminals and browsers.
//
// Usage:
//
//	snake play     - Play in this terminal
//	snake serve    - Start SSH server for remote play
//	snake web      - Serve the browser version
//	snake score    - Show or reset the high score
//
// Global flags:
//
//	--seed <value>   - Set RNG seed for reproducible gameplay
//	--db <path>      - Set database path (default: ~/.snake/snake.db)
//	--config <path>  - Use a custom game config YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed   int64
	flagDBPath string
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Purple Snake - eat apples, avoid walls and yourself",
	Long: `Purple Snake is the classic snake game on a 20x20 board.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  web      - Serve the browser version
  score    - Show or reset the high score

Examples:
  snake play
  snake play --mute
  snake serve --ssh :2222
  snake web --addr :8080
  snake score --reset`,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.snake/snake.db", "Path to high score database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(webCmd)
	rootCmd.AddCommand(scoreCmd)
}
