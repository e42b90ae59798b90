package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/mindflex/internal/registry"
	"github.com/vovakirdan/mindflex/internal/storage"
)

var flagLimit int

var resultsCmd = &cobra.Command{
	Use:   "results [game]",
	Short: "Show stored results",
	Long: `Without an argument, shows per-game statistics and the most recent
runs. With a game id, shows that game's best runs.

Examples:
  mindflex results
  mindflex results schulte
  mindflex results sequence --limit 20`,
	Args: cobra.MaximumNArgs(1),
	Run:  runResults,
}

func init() {
	resultsCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
}

func runResults(_ *cobra.Command, args []string) {
	store, err := storage.Open(settings.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if len(args) == 1 {
		err = printGameResults(store, args[0])
	} else {
		err = printOverview(store)
	}
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printGameResults(store *storage.Store, gameID string) error {
	info, ok := registry.Info(gameID)
	if !ok {
		return fmt.Errorf("unknown game %q, run 'mindflex list' to see available games", gameID)
	}

	results, err := store.TopResults(gameID, flagLimit)
	if err != nil {
		return err
	}

	fmt.Printf("Best runs - %s\n", info.Title)
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'mindflex play %s' to record the first one!\n", gameID)
		return nil
	}

	printTable(results, false)

	stats, err := store.GetGameStats(gameID)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Runs: %d  Finished: %d  Best: %d  Average: %.1f  Best level: %d\n",
		stats.Runs, stats.Finished, stats.BestPoints, stats.AvgPoints, stats.BestLevel)
	return nil
}

func printOverview(store *storage.Store) error {
	all, err := store.GetAllGamesStats()
	if err != nil {
		return err
	}

	if len(all) == 0 {
		fmt.Println("No runs recorded yet.")
		return nil
	}

	ids := make([]string, 0, len(all))
	for id := range all {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Println("Games")
	fmt.Println()
	fmt.Printf("  %-10s  %5s  %8s  %6s  %8s  %s\n", "Game", "Runs", "Finished", "Best", "Average", "Last played")
	fmt.Printf("  %-10s  %5s  %8s  %6s  %8s  %s\n", "----", "----", "--------", "----", "-------", "-----------")
	for _, id := range ids {
		st := all[id]
		fmt.Printf("  %-10s  %5d  %8d  %6d  %8.1f  %s\n",
			id, st.Runs, st.Finished, st.BestPoints, st.AvgPoints, st.LastPlayed.Format("2006-01-02 15:04"))
	}

	recent, err := store.RecentResults(flagLimit)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Println("Recent runs")
	fmt.Println()
	printTable(recent, true)
	return nil
}

func printTable(results []storage.Result, withGame bool) {
	if withGame {
		fmt.Printf("  %-4s  %-10s  %-6s  %-5s  %-9s  %s\n", "#", "Game", "Points", "Level", "Outcome", "Date")
		fmt.Printf("  %-4s  %-10s  %-6s  %-5s  %-9s  %s\n", "-", "----", "------", "-----", "-------", "----")
	} else {
		fmt.Printf("  %-4s  %-6s  %-5s  %-9s  %s\n", "Rank", "Points", "Level", "Outcome", "Date")
		fmt.Printf("  %-4s  %-6s  %-5s  %-9s  %s\n", "----", "------", "-----", "-------", "----")
	}

	for i, r := range results {
		date := r.CreatedAt.Format("2006-01-02 15:04")
		if withGame {
			fmt.Printf("  %-4d  %-10s  %-6d  %-5d  %-9s  %s\n", i+1, r.GameID, r.Points, r.Level, r.Outcome, date)
			continue
		}
		fmt.Printf("  %-4d  %-6d  %-5d  %-9s  %s\n", i+1, r.Points, r.Level, r.Outcome, date)
	}
}
