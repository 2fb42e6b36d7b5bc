package main

import (
	"fmt"
	"maps"
	"os"
	"slices"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	flagRunsLimit int
	flagRunsMap   string
	flagRunsTop   bool
	flagRunsTUI   bool
	flagRunsClear bool
	flagRunsID    string
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Show the run journal",
	Long: `Display the runs recorded by 'snake bench': the most recent ones, or
the best ones with --top, followed by per map statistics.

Examples:
  snake runs
  snake runs --top --map AROUND
  snake runs --id 2f1c...
  snake runs --tui`,
	Args: cobra.NoArgs,
	RunE: runRuns,
}

func init() {
	f := runsCmd.Flags()
	f.IntVarP(&flagRunsLimit, "limit", "n", 20, "Number of runs to show")
	f.StringVarP(&flagRunsMap, "map", "m", "", "Only runs that started on this map (with --top)")
	f.BoolVar(&flagRunsTop, "top", false, "Best runs by score instead of the most recent")
	f.BoolVar(&flagRunsTUI, "tui", false, "Browse the journal interactively")
	f.BoolVar(&flagRunsClear, "clear", false, "Delete every recorded run")
	f.StringVar(&flagRunsID, "id", "", "Show one run by id")
}

func runRuns(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	switch {
	case flagRunsClear:
		if err := store.ClearRuns(); err != nil {
			return err
		}
		fmt.Println("Run journal cleared.")
		return nil

	case flagRunsID != "":
		return showRun(store, flagRunsID)

	case flagRunsTUI:
		width, height := 80, 24
		if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			width, height = w, h
		}
		return tui.RunBrowser(store, width, height)
	}

	var runs []storage.Run
	if flagRunsTop {
		runs, err = store.TopRuns(flagRunsMap, flagRunsLimit)
	} else {
		runs, err = store.RecentRuns(flagRunsLimit)
	}
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Run 'snake bench' to record some autoplay runs.")
		return nil
	}

	fmt.Printf("  %-4s  %-9s  %-9s  %7s  %5s  %7s  %-20s  %s\n",
		"#", "Map", "Outcome", "Score", "Len", "Ticks", "Seed", "Date")
	fmt.Printf("  %-4s  %-9s  %-9s  %7s  %5s  %7s  %-20s  %s\n",
		"-", "---", "-------", "-----", "---", "-----", "----", "----")
	for i, r := range runs {
		fmt.Printf("  %-4d  %s  %-9s  %7d  %5d  %7d  %-20d  %s\n",
			i+1, pad(r.Map, 9), r.Outcome, r.Score, r.Length, r.Ticks, r.Seed,
			r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.MapStats()
	if err != nil {
		return err
	}
	total, err := store.Stats()
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Printf("  %-9s  %5s  %7s  %9s  %9s  %9s  %5s\n",
		"Map", "Runs", "Best", "Avg score", "Avg ticks", "Collision", "Stuck")
	for _, name := range slices.Sorted(maps.Keys(stats)) {
		printStats(name, stats[name])
	}
	printStats("ALL", total)
	return nil
}

func printStats(name string, s *storage.Stats) {
	fmt.Printf("  %s  %5d  %7d  %9.1f  %9.0f  %9d  %5d\n",
		pad(name, 9), s.Runs, s.BestScore, s.AvgScore, s.AvgTicks, s.Collisions, s.Stuck)
}

func showRun(store *storage.Store, id string) error {
	r, err := store.RunByID(id)
	if err != nil {
		return err
	}
	if r == nil {
		return fmt.Errorf("no run with id %q", id)
	}
	fmt.Printf("Run      %s\n", r.ID)
	fmt.Printf("Date     %s\n", r.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Printf("Seed     %d\n", r.Seed)
	fmt.Printf("Map      %s, %d cleared\n", r.Map, r.Cleared)
	fmt.Printf("Speed    %d\n", r.Speed)
	fmt.Printf("Outcome  %s after %d ticks\n", r.Outcome, r.Ticks)
	fmt.Printf("Score    %d, length %d\n", r.Score, r.Length)
	return nil
}
