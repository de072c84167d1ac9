package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/purple-snake/internal/storage"
)

var flagReset bool

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Show or reset the high score",
	Long: `Display the stored high score.

Examples:
  snake score
  snake score --reset
  snake score --db ./snake.db`,
	Args: cobra.NoArgs,
	Run:  runScore,
}

func init() {
	scoreCmd.Flags().BoolVar(&flagReset, "reset", false, "Clear the stored high score")
}

func runScore(_ *cobra.Command, _ []string) {
	gameCfg := loadConfig()

	// Unlike play, a missing database is an error here
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening high score database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	high := storage.NewHighScore(store, gameCfg.Storage.Key)

	if flagReset {
		if err := high.Reset(); err != nil {
			fmt.Fprintf(os.Stderr, "Error resetting high score: %v\n", err)
			store.Close()
			os.Exit(1)
		}
		fmt.Println("High score reset.")
		return
	}

	score, err := high.HighScore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading high score: %v\n", err)
		store.Close()
		os.Exit(1)
	}

	fmt.Println("Purple Snake")
	fmt.Println()
	if score == 0 {
		fmt.Println("No high score recorded yet.")
		fmt.Println()
		fmt.Println("Play 'snake play' to set the first one!")
		return
	}
	fmt.Printf("  High Score: %d\n", score)
}
