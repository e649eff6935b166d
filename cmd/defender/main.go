// defender is a terminal reactor-defense game: keep anomalies away from
// the quantum core by arranging defense nodes and spending power-ups.
//
// Usage:
//
//	defender play            - Play a mission
//	defender menu            - Launcher with play and high scores
//	defender serve           - Start SSH server for remote play
//	defender scores          - Show high scores
//	defender levels          - Print the level progression table
//	defender config          - Print the configuration as YAML
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 30)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.arcade/defender.db)
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/quantum-defender/internal/core"
	"github.com/vovakirdan/quantum-defender/internal/storage"

	// Import the game to register it
	_ "github.com/vovakirdan/quantum-defender/internal/games/defender"
)

const gameID = "defender"

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "defender",
	Short: "Quantum Defender - protect the reactor core in your terminal",
	Long: `Quantum Defender is a terminal reactor-defense game. Anomalies drift
toward the quantum core; drag defense nodes so their connections intercept
them, click anomalies to destroy them, and spend power-ups when the pressure
builds.

Available commands:
  play     - Play a mission
  menu     - Launcher with play and high scores
  serve    - Start SSH server for remote play
  scores   - View high scores
  levels   - Show the level progression table
  config   - Print the configuration as YAML

Examples:
  defender play
  defender play --difficulty hard --volume 50
  defender menu
  defender serve --ssh :2222
  defender scores --limit 20`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to runs database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(configCmd)
}

// runtimeConfig builds the runtime config from the terminal size and global flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the runs database. A failure is reported and the game
// continues without persistence.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		return nil
	}
	return store
}

// fileLogger returns a logger writing to ~/.arcade/defender.log, since the
// TUI owns the terminal. Falls back to a discarding logger.
func fileLogger() (*log.Logger, func()) {
	home, err := os.UserHomeDir()
	if err != nil {
		return log.New(io.Discard), func() {}
	}

	dir := filepath.Join(home, ".arcade")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return log.New(io.Discard), func() {}
	}

	f, err := os.OpenFile(filepath.Join(dir, "defender.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return log.New(io.Discard), func() {}
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "defender",
	})
	return logger, func() { f.Close() }
}
