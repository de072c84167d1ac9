// Package web serves the snake game to browsers: an embedded canvas page and
// a websocket that drives one game per connection.
package web

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/purple-snake/internal/config"
	"github.com/vovakirdan/purple-snake/internal/games/snake"
)

//go:embed static
var staticFiles embed.FS

// ServerConfig holds configuration for the web server.
type ServerConfig struct {
	// Address is the host:port to listen on (e.g., ":8080").
	Address string
}

// DefaultServerConfig returns a config with sensible defaults.
func DefaultServerConfig() ServerConfig {
	return ServerConfig{Address: ":8080"}
}

// Server serves the browser front end. All connections share the
// high-score store.
type Server struct {
	config   ServerConfig
	game     config.SnakeConfig
	store    snake.HighScoreStore
	static   fs.FS
	logger   *log.Logger
	upgrader websocket.Upgrader
}

// NewServer creates a web server. The caller owns store.
func NewServer(cfg ServerConfig, game config.SnakeConfig, store snake.HighScoreStore) (*Server, error) {
	static, err := fs.Sub(staticFiles, "static")
	if err != nil {
		return nil, fmt.Errorf("web: static files: %w", err)
	}

	return &Server{
		config: cfg,
		game:   game,
		store:  store,
		static: static,
		logger: log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "snake-web",
		}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}, nil
}

// Handler returns the HTTP handler serving the page and the websocket.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("GET /", http.FileServerFS(s.static))
	mux.HandleFunc("GET /ws", s.handleWebSocket)
	return mux
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already replied to the client.
		s.logger.Warn("websocket upgrade failed", "remote", r.RemoteAddr, "error", err)
		return
	}
	defer conn.Close()

	id := uuid.NewString()
	logger := s.logger.With("session", id)
	start := time.Now()
	logger.Info("session started", "remote", r.RemoteAddr)

	newSession(conn, s.game, s.store, logger).run(r.Context())

	logger.Info("session ended", "duration", time.Since(start).Round(time.Second))
}

// ListenAndServe starts the web server and blocks until ctx is done.
// Open websockets are closed through their request contexts.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.config.Address,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	s.logger.Info("starting web server", "address", s.config.Address)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("web: listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("web: shutdown: %w", err)
	}
	return nil
}

// Addr returns the server's listen address string.
func (s *Server) Addr() string {
	return s.config.Address
}
