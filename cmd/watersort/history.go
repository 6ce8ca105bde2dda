package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/watersort/internal/platform/tui"
	"github.com/vovakirdan/watersort/internal/storage"
)

var (
	flagPlayer string
	flagPlain  bool
	flagLimit  int
	flagRunID  string
	flagClear  bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse recorded runs",
	Long: `Show the run journal: one row per finished run with the levels
played, levels sorted, pours and time taken.

Runs are only a history log. A new game always starts fresh.

Examples:
  watersort history
  watersort history --player ada
  watersort history --plain --limit 5
  watersort history --run 0b7c6f3e-5d1a-4a58-9f2e-2c1d7f1e9a10
  watersort history --clear`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().StringVar(&flagPlayer, "player", "", "Only show runs of this player")
	historyCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print a plain table instead of the interactive view")
	historyCmd.Flags().IntVar(&flagLimit, "limit", 20, "Rows to print in plain mode")
	historyCmd.Flags().StringVar(&flagRunID, "run", "", "Show one run by its ID")
	historyCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every recorded run")
	historyCmd.MarkFlagsMutuallyExclusive("run", "clear")
}

func runHistory(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening run journal: %w", err)
	}
	defer store.Close()

	switch {
	case flagClear:
		return clearHistory(os.Stdout, store)
	case flagRunID != "":
		return printRun(os.Stdout, store, flagRunID)
	}

	interactive := term.IsTerminal(int(os.Stdout.Fd()))
	if interactive && !flagPlain {
		width, height, termErr := term.GetSize(int(os.Stdout.Fd()))
		if termErr != nil {
			width, height = 80, 24
		}
		return tui.RunHistory(store, flagPlayer, width, height)
	}

	return printHistory(os.Stdout, store, flagPlayer, flagLimit)
}

func printHistory(w io.Writer, store *storage.Store, player string, limit int) error {
	var (
		runs []storage.Run
		err  error
	)
	if player != "" {
		runs, err = store.PlayerRuns(player, limit)
	} else {
		runs, err = store.RecentRuns(limit)
	}
	if err != nil {
		return err
	}

	title := "Run History"
	if player != "" {
		title += " - " + player
	}
	fmt.Fprintln(w, title)
	fmt.Fprintln(w)

	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Play 'watersort play' to record the first one!")
		return nil
	}

	fmt.Fprintf(w, "  %-16s  %-12s  %-7s  %-6s  %-5s  %-8s  %-4s  %s\n", "Date", "Player", "Levels", "Sorted", "Pours", "Time", "Done", "ID")
	fmt.Fprintf(w, "  %-16s  %-12s  %-7s  %-6s  %-5s  %-8s  %-4s  %s\n", "----", "------", "------", "------", "-----", "----", "----", "--")

	for _, r := range runs {
		fmt.Fprintf(w, "  %-16s  %-12s  %-7s  %-6d  %-5d  %-8s  %-4s  %s\n",
			r.EndedAt.Local().Format("2006-01-02 15:04"),
			r.Player,
			fmt.Sprintf("%d-%d", r.StartLevel, r.LevelReached),
			r.LevelsCleared,
			r.Pours,
			r.Duration().Round(time.Second),
			doneMark(r),
			r.ID,
		)
	}

	sum, err := store.Summary(player)
	if err == nil {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Runs: %d  Completed: %d  Furthest level: %d\n", sum.Runs, sum.CompletedRuns, sum.FurthestLevel)
	}
	return nil
}

// printRun shows every recorded field of one run.
func printRun(w io.Writer, store *storage.Store, id string) error {
	r, err := store.RunByID(id)
	if err != nil {
		return err
	}
	if r == nil {
		return fmt.Errorf("no run with id %q", id)
	}

	fmt.Fprintf(w, "Run %s\n\n", r.ID)
	fmt.Fprintf(w, "  Player:      %s\n", r.Player)
	fmt.Fprintf(w, "  Seed:        %d\n", r.Seed)
	fmt.Fprintf(w, "  Levels:      %d-%d of %d\n", r.StartLevel, r.LevelReached, r.TotalLevels)
	fmt.Fprintf(w, "  Sorted:      %d\n", r.LevelsCleared)
	fmt.Fprintf(w, "  Pours:       %d\n", r.Pours)
	fmt.Fprintf(w, "  Completed:   %t\n", r.Completed)
	fmt.Fprintf(w, "  Started:     %s\n", r.StartedAt.Local().Format("2006-01-02 15:04:05"))
	fmt.Fprintf(w, "  Time:        %s\n", r.Duration().Round(time.Second))
	return nil
}

func clearHistory(w io.Writer, store *storage.Store) error {
	if err := store.ClearRuns(); err != nil {
		return err
	}
	fmt.Fprintln(w, "Run journal cleared.")
	return nil
}

func doneMark(r storage.Run) string {
	if r.Completed {
		return "yes"
	}
	return ""
}
