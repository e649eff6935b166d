package main

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/quantum-defender/internal/storage"
)

var (
	flagLimit  int
	flagRecent bool
	flagClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the best runs, or the most recent ones with --recent.

Examples:
  defender scores
  defender scores --limit 20
  defender scores --recent
  defender scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "Show most recent runs instead of the best")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded runs")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(gameID); err != nil {
			store.Close()
			fmt.Fprintf(os.Stderr, "Error clearing runs: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("All runs cleared.")
		return
	}

	title := "High Scores"
	var runs []storage.Run
	if flagRecent {
		title = "Recent Runs"
		runs, err = store.RecentRuns(gameID, flagLimit)
	} else {
		runs, err = store.TopRuns(gameID, flagLimit)
	}
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%s - Quantum Defender\n", title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'defender play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-10s  %-5s  %-7s  %-12s  %s\n", "Rank", "Score", "Level", "Result", "Player", "When")
	fmt.Printf("  %-4s  %-10s  %-5s  %-7s  %-12s  %s\n", "----", "-----", "-----", "------", "------", "----")

	for i, r := range runs {
		result := "failed"
		if r.Success {
			result = "success"
		}
		player := r.Player
		if player == "" {
			player = "-"
		}
		fmt.Printf("  %-4d  %-10s  %-5d  %-7s  %-12s  %s\n",
			i+1, humanize.Comma(int64(r.Score)), r.Level, result, player, humanize.Time(r.CreatedAt))
	}

	stats, err := store.GetGameStats(gameID)
	if err != nil {
		return
	}
	fmt.Println()
	fmt.Printf("Best: %s  Runs: %s  Wins: %s  Average: %s\n",
		humanize.Comma(int64(stats.HighScore)),
		humanize.Comma(int64(stats.RunsCount)),
		humanize.Comma(int64(stats.Successes)),
		humanize.CommafWithDigits(stats.AvgScore, 1),
	)
}
