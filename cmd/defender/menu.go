package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/quantum-defender/internal/games/defender"
	"github.com/vovakirdan/quantum-defender/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the launcher",
	Long: `Start the launcher: play missions and browse high scores.
After a game ends, you return to the launcher.

Controls:
  Up/Down/j/k  - Navigate
  Enter/Space  - Select
  Q            - Quit

Examples:
  defender menu
  defender menu --fps 60
  defender menu --db ./runs.db`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	gameCfg, err := gameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog := fileLogger()
	defer closeLog()

	mgr := newAudio(gameCfg, logger)
	defer mgr.Close()

	store := openStore()
	cfg := runtimeConfig()

	for {
		result, err := tui.RunMenu(store, gameID, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}
		cfg = result.Config

		switch result.Choice {
		case tui.ChoiceScores:
			goBack, sbErr := tui.RunScoreboard(store, gameID, "Quantum Defender", cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}

		case tui.ChoicePlay:
			// Fresh seed per game unless pinned
			runCfg := cfg
			if flagSeed == 0 {
				runCfg.Seed = time.Now().UnixNano()
			}

			if err := tui.Run(defender.NewWithConfig(gameCfg), store, runCfg, tui.Options{
				Audio:      mgr,
				Player:     currentUser(),
				Difficulty: flagDifficulty,
				Logger:     logger,
			}); err != nil {
				fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
			}
			continue
		}
		break
	}

	if store != nil {
		store.Close()
	}
}
