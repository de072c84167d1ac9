package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/purple-snake/internal/audio"
	"github.com/vovakirdan/purple-snake/internal/core"
	"github.com/vovakirdan/purple-snake/internal/games/snake"
	"github.com/vovakirdan/purple-snake/internal/platform/tui"
)

var flagMute bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in the current terminal.

Controls:
  Arrows       - Steer the snake
  Enter/Space  - Start or restart
  ?            - Toggle help
  Ctrl+S       - Save a screenshot to ~/.snake/screenshots
  Q/Ctrl+C     - Quit

Examples:
  snake play
  snake play --mute
  snake play --seed 42
  snake play --config ./my-snake.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound effects")
}

func runPlay(_ *cobra.Command, _ []string) {
	gameCfg := loadConfig()

	// Get terminal size early so the first frame is laid out
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		Seed:    flagSeed,
	}

	sound, err := audio.Open(gameCfg.Sound.Enabled && !flagMute)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: sound disabled: %v\n", err)
	}
	defer sound.Close()

	store, closeStore := openHighScore(gameCfg.Storage.Key)
	defer closeStore()

	game := snake.New(gameCfg, store)
	if err := tui.Run(game, cfg, tui.Options{Sound: sound}); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		closeStore()
		os.Exit(1)
	}
}
