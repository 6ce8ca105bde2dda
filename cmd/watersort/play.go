package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/watersort/internal/core"
	"github.com/vovakirdan/watersort/internal/games/watersort"
	"github.com/vovakirdan/watersort/internal/platform/tui"
	"github.com/vovakirdan/watersort/internal/storage"
)

var (
	flagDifficulty string
	flagLevel      int
	flagBell       bool
	flagLetters    bool
	flagNoJournal  bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play water sort",
	Long: `Start a run of water sort levels in this terminal.

Each pour moves one unit of liquid from the chosen tube into the first
other tube, counting from the left, that is empty or has the same color
on top and still has room. Sort every tube to a single color to clear
the level.

Controls:
  ←/→, h/l   - Move the tube cursor
  Enter/Space - Pour from the cursor tube
  1-9        - Pour from that tube
  Mouse      - Click a tube to pour from it
  P/Esc      - Pause
  N          - Skip to the next level
  R          - Restart the run
  T          - Toggle color letters
  ?          - Show all keys
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Start at level 1
  normal - Start 30% into the run
  hard   - Start 70% into the run
  fixed  - Start at the config's levels.start

Examples:
  watersort play
  watersort play --difficulty hard
  watersort play --level 12
  watersort play --letters --bell
  watersort play --config ./my-watersort.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Start at this level (overrides --difficulty)")
	playCmd.Flags().BoolVar(&flagBell, "bell", false, "Ring the terminal bell when a level is cleared")
	playCmd.Flags().BoolVar(&flagLetters, "letters", false, "Draw color letters instead of blocks")
	playCmd.Flags().BoolVar(&flagNoJournal, "no-journal", false, "Do not record this run")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	wsCfg, err := loadConfig(flagDifficulty)
	if err != nil {
		return err
	}

	gameCfg := wsCfg.ToCore()
	if cmd.Flags().Changed("level") {
		gameCfg.StartLevel = flagLevel
	}
	if err := gameCfg.Validate(); err != nil {
		return err
	}

	logger, closer, err := openLogger("watersort")
	if err != nil {
		return err
	}
	defer closer.Close()

	// Get terminal size for the first layout
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	game := watersort.New(gameCfg)
	game.SetLetters(wsCfg.Display.Letters || flagLetters)

	var store *storage.Store
	if !flagNoJournal {
		store, err = storage.Open(flagDBPath)
		if err != nil {
			logger.Warn("could not open run journal", "error", err)
			fmt.Fprintf(os.Stderr, "Warning: could not open run journal: %v\n", err)
			// Continue without storage - game still works
			store = nil
		}
	}

	opts := tui.Options{
		Store:  store,
		Logger: logger,
	}
	if flagBell {
		opts.Cuer = tui.NewBellCuer(os.Stdout)
	}

	runErr := tui.Run(game, core.RuntimeConfig{ScreenW: width, ScreenH: height, Seed: flagSeed}, opts)

	// Close store before reporting
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		return fmt.Errorf("running game: %w", runErr)
	}
	return nil
}
