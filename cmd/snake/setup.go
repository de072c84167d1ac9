package main

import (
	"fmt"
	"os"

	"github.com/vovakirdan/purple-snake/internal/config"
	"github.com/vovakirdan/purple-snake/internal/storage"
)

// loadConfig loads the game config or exits.
func loadConfig() config.SnakeConfig {
	cfg, err := config.LoadSnake(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// openHighScore opens the high score database. When it cannot be opened
// the game still works with an in-memory store. The returned func closes
// whatever was opened.
func openHighScore(key string) (*storage.HighScore, func()) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open high score database: %v\n", err)
		fmt.Fprintln(os.Stderr, "Warning: the high score will not be saved")
		return storage.NewHighScore(storage.NewMemory(), key), func() {}
	}

	return storage.NewHighScore(store, key), func() {
		//nolint:errcheck // Best-effort close on exit
		store.Close()
	}
}
