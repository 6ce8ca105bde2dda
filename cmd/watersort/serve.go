package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/watersort/internal/config"
	"github.com/vovakirdan/watersort/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagServeBell   bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the water sort SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own independent run. Finished runs are
recorded in the server's journal under the SSH user name.

Settings come from the environment and can be overridden by flags:
  WATERSORT_SSH_ADDR      - listen address (default :23234)
  WATERSORT_HOST_KEY      - host key path
  WATERSORT_DB            - run journal path
  WATERSORT_IDLE_TIMEOUT  - idle timeout, e.g. 10m (default 30m)

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.watersort/host_key

Examples:
  watersort serve                           # Listen on :23234 with auto-generated key
  watersort serve --ssh :2222               # Listen on port 2222
  watersort serve --host-key ./my_host_key  # Use specific host key
  watersort serve --db ./runs.db            # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset for every session")
	serveCmd.Flags().BoolVar(&flagServeBell, "bell", false, "Ring the client's bell when a level is cleared")
}

func runServe(cmd *cobra.Command, _ []string) error {
	env, err := config.LoadServerEnv()
	if err != nil {
		return err
	}
	wsCfg, err := loadConfig(flagDifficulty)
	if err != nil {
		return err
	}

	cfg := tui.DefaultServerConfig()
	cfg.Address = env.Addr
	cfg.HostKeyPath = env.HostKey
	cfg.IdleTimeout = env.IdleTimeout
	cfg.DBPath = env.DB
	cfg.Game = wsCfg.ToCore()
	cfg.Letters = wsCfg.Display.Letters
	cfg.Bell = flagServeBell

	// Flags win over the environment
	flags := cmd.Flags()
	if flags.Changed("ssh") {
		cfg.Address = flagSSHAddr
	}
	if flags.Changed("host-key") {
		cfg.HostKeyPath = flagHostKey
	}
	if flags.Changed("idle-timeout") {
		cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	}
	if flags.Changed("db") || env.DB == "" {
		cfg.DBPath = flagDBPath
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "watersort-ssh",
	})

	server, err := tui.NewServer(cfg, logger)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	fmt.Printf("Starting water sort SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe()
}
