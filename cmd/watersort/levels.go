package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/watersort/internal/config"
	"github.com/vovakirdan/watersort/internal/games/watersort/core"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Show tubes and colors for every level",
	Long: `Print how many tubes and colors each level of a run uses, based on
the active configuration. "Board" is the number of tubes actually dealt,
which can exceed "Tubes" when scaling.fit is "grow". Levels the
configuration cannot build are listed with the reason.

Examples:
  watersort levels
  watersort levels --config ./my-watersort.yaml`,
	Args: cobra.NoArgs,
	RunE: runLevels,
}

func runLevels(_ *cobra.Command, _ []string) error {
	// Read without validating so broken levels can be listed.
	wsCfg, err := config.Read(flagConfig)
	if err != nil {
		return err
	}
	cfg := wsCfg.ToCore()
	gen := core.NewGenerator(cfg.Scaling, cfg.PaletteSize, nil)
	scaling := gen.Scaling()

	fmt.Printf("Levels - %d total, palette of %d, fit %s\n", cfg.TotalLevels, cfg.PaletteSize, scaling.Fit)
	fmt.Println()

	fmt.Printf("  %-5s  %-5s  %-6s  %-5s  %s\n", "Level", "Tubes", "Colors", "Board", "Status")
	fmt.Printf("  %-5s  %-5s  %-6s  %-5s  %s\n", "-----", "-----", "------", "-----", "------")

	for level := 1; level <= cfg.TotalLevels; level++ {
		status := "ok"
		if err := gen.Check(level); err != nil {
			status = err.Error()
		}
		marker := " "
		if level == cfg.StartLevel {
			marker = "*"
		}
		fmt.Printf("%s %-5d  %-5d  %-6d  %-5d  %s\n",
			marker, level, scaling.TubeCount(level), scaling.ColorCount(level), scaling.BoardTubes(level), status)
	}

	fmt.Println()
	fmt.Println("* start level")
	return nil
}
