package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/quantum-defender/internal/games/defender"
)

var flagCount int

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Show the level progression table",
	Long: `Print the per-level anomaly count, speed, spawn interval, time limit
and color theme.

Examples:
  defender levels
  defender levels --count 25`,
	Args: cobra.NoArgs,
	Run:  runLevels,
}

func init() {
	levelsCmd.Flags().IntVar(&flagCount, "count", 10, "Number of levels to show")
}

func runLevels(_ *cobra.Command, _ []string) {
	fmt.Printf("  %-5s  %-9s  %-5s  %-7s  %-5s  %s\n", "Level", "Anomalies", "Speed", "Spawn", "Time", "Theme")
	fmt.Printf("  %-5s  %-9s  %-5s  %-7s  %-5s  %s\n", "-----", "---------", "-----", "-----", "----", "-----")

	for n := 1; n <= flagCount; n++ {
		lc := defender.LevelConfigFor(n)
		theme := defender.ThemeFor(n)
		fmt.Printf("  %-5d  %-9d  %-5.1f  %-7s  %-5s  %s/%s\n",
			n, lc.AnomalyCount, lc.AnomalySpeed, lc.SpawnRate, fmt.Sprintf("%ds", lc.TimeLimit),
			theme.Primary, theme.Secondary)
	}
}
