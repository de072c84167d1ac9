package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/purple-snake/internal/platform/web"
)

var flagWebAddr string

var webCmd = &cobra.Command{
	Use:   "web",
	Short: "Serve the browser version",
	Long: `Start an HTTP server with the browser version of the game.

Every browser tab plays its own game over a websocket. All tabs share one
high score with the terminal versions when they use the same database.

Examples:
  snake web                 # Listen on :8080
  snake web --addr :9000    # Listen on port 9000`,
	Args: cobra.NoArgs,
	Run:  runWeb,
}

func init() {
	webCmd.Flags().StringVar(&flagWebAddr, "addr", ":8080", "HTTP server address (host:port)")
}

func runWeb(_ *cobra.Command, _ []string) {
	gameCfg := loadConfig()
	store, closeStore := openHighScore(gameCfg.Storage.Key)
	defer closeStore()

	server, err := web.NewServer(web.ServerConfig{Address: flagWebAddr}, gameCfg, store)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		closeStore()
		os.Exit(1)
	}

	fmt.Printf("Starting snake web server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.ListenAndServe(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		closeStore()
		os.Exit(1)
	}
}
