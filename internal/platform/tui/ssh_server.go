// Package tui provides the terminal front end: the play model, the run
// history screen and an SSH server via Wish.
package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/watersort/internal/core"
	"github.com/vovakirdan/watersort/internal/games/watersort"
	wscore "github.com/vovakirdan/watersort/internal/games/watersort/core"
	"github.com/vovakirdan/watersort/internal/storage"
)

// shutdownGrace bounds how long open sessions get to close on shutdown.
const shutdownGrace = 10 * time.Second

// ServerConfig configures the water sort SSH server.
type ServerConfig struct {
	Address     string        // Listen address, e.g. ":23234"
	HostKeyPath string        // Generated on first start; empty means ~/.watersort/host_key
	DBPath      string        // Run journal; empty disables recording
	IdleTimeout time.Duration // Idle connections are dropped after this

	Game    wscore.Config // Session settings shared by every connection
	Letters bool          // Start sessions in letter mode
	Bell    bool          // Ring the client's bell on level completion
}

// DefaultServerConfig listens on :23234 and records runs in the user's
// journal.
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Address:     ":23234",
		DBPath:      "~/.watersort/runs.db",
		IdleTimeout: 30 * time.Minute,
		Game:        wscore.DefaultConfig(),
	}
}

// Server serves one independent water sort run per SSH connection.
type Server struct {
	cfg    ServerConfig
	ssh    *ssh.Server
	store  *storage.Store
	logger *log.Logger
}

// recorderKey stores a connection's RunRecorder in its ssh.Context.
type recorderKey struct{}

// NewServer validates cfg, opens the journal and prepares the Wish server.
// A journal that cannot be opened is logged and skipped.
func NewServer(cfg ServerConfig, logger *log.Logger) (*Server, error) {
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "watersort-ssh",
		})
	}
	if err := cfg.Game.Validate(); err != nil {
		return nil, fmt.Errorf("serve: game config: %w", err)
	}

	keyPath, err := hostKeyPath(cfg.HostKeyPath)
	if err != nil {
		return nil, err
	}

	srv := &Server{cfg: cfg, logger: logger}
	if cfg.DBPath != "" {
		if srv.store, err = storage.Open(cfg.DBPath); err != nil {
			logger.Warn("run journal disabled", "error", err)
			srv.store = nil
		}
	}

	srv.ssh, err = wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(keyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.newSession),
			srv.trackSession,
		),
	)
	if err != nil {
		srv.closeStore()
		return nil, fmt.Errorf("serve: build ssh server: %w", err)
	}
	return srv, nil
}

// hostKeyPath resolves the host key location and makes sure its directory
// exists. Wish generates the key itself when the file is missing.
func hostKeyPath(path string) (string, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("serve: locate home directory: %w", err)
		}
		path = filepath.Join(home, ".watersort", "host_key")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return "", fmt.Errorf("serve: host key directory: %w", err)
	}
	return path, nil
}

// newSession builds the play model for one connection. Connections without
// a PTY are refused.
func (s *Server) newSession(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sess.Pty()
	if !ok {
		s.logger.Warn("refusing session without a PTY", "user", sess.User())
		return nil, nil
	}

	game := watersort.New(s.cfg.Game)
	game.SetLetters(s.cfg.Letters)

	opts := Options{
		Store:  s.store,
		Logger: s.logger.With("user", sess.User()),
		Player: sess.User(),
	}
	if s.cfg.Bell {
		opts.Cuer = NewBellCuer(sess)
	}

	model := NewModel(game, core.RuntimeConfig{
		ScreenW: pty.Window.Width,
		ScreenH: pty.Window.Height,
		Seed:    time.Now().UnixNano(),
	}, opts)
	sess.Context().SetValue(recorderKey{}, model.Recorder())

	return model, []tea.ProgramOption{tea.WithAltScreen(), tea.WithMouseCellMotion()}
}

// trackSession logs each connection and records its run once the program
// is gone, which covers clients that disconnect without quitting.
func (s *Server) trackSession(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		logger := s.logger.With("user", sess.User(), "remote", sess.RemoteAddr().String())
		logger.Info("connected")
		started := time.Now()

		next(sess)

		if rec, ok := sess.Context().Value(recorderKey{}).(*RunRecorder); ok {
			rec.Finish()
		}
		logger.Info("disconnected", "after", time.Since(started).Round(time.Second))
	}
}

// ListenAndServe serves until SIGINT or SIGTERM, then shuts down.
func (s *Server) ListenAndServe() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s.logger.Info("listening", "address", s.cfg.Address, "journal", s.store != nil)

	errc := make(chan error, 1)
	go func() {
		errc <- s.ssh.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("stopping")
		return s.Shutdown()
	case err := <-errc:
		s.closeStore()
		if errors.Is(err, ssh.ErrServerClosed) {
			return nil
		}
		s.logger.Error("ssh server stopped", "error", err)
		return fmt.Errorf("serve: %w", err)
	}
}

// Shutdown closes the listener, waits up to shutdownGrace for sessions and
// then closes the journal.
func (s *Server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()

	err := s.ssh.Shutdown(ctx)
	s.closeStore()
	return err
}

func (s *Server) closeStore() {
	if s.store == nil {
		return
	}
	if err := s.store.Close(); err != nil {
		s.logger.Warn("closing run journal", "error", err)
	}
	s.store = nil
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	return s.cfg.Address
}
