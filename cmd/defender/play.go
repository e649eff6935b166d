package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/quantum-defender/internal/audio"
	"github.com/vovakirdan/quantum-defender/internal/config"
	"github.com/vovakirdan/quantum-defender/internal/games/defender"
	"github.com/vovakirdan/quantum-defender/internal/platform/tui"
)

var (
	flagConfig     string
	flagDifficulty string
	flagVolume     int
	flagMute       bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a mission",
	Long: `Start a Quantum Defender mission.

Controls:
  Enter/S     - Start mission (Enter also plays again after game over)
  Mouse       - Click anomalies to destroy them, drag nodes to move them
  1/2/3       - Slow time / Shield / Quantum blast
  P/Esc       - Pause
  R           - Abort and return to the title screen
  H/?         - Instructions
  +/-         - Volume
  Ctrl+S      - Save a text screenshot
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - Slow anomalies, fewer at once, light core damage
  normal - Default pace
  hard   - Fast anomalies, crowded arena, heavy core damage

Examples:
  defender play
  defender play --difficulty easy
  defender play --volume 30
  defender play --mute
  defender play --config ./my-defender.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	for _, cmd := range []*cobra.Command{playCmd, menuCmd} {
		cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
		cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
		cmd.Flags().IntVar(&flagVolume, "volume", -1, "Master volume 0-100 (default from config)")
		cmd.Flags().BoolVar(&flagMute, "mute", false, "Disable audio")
	}
}

// gameConfig loads the game config and applies the command-line overrides.
func gameConfig() (config.DefenderConfig, error) {
	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		return config.DefenderConfig{}, fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", flagDifficulty)
	}

	cfg, err := config.LoadDefender(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v, using defaults\n", err)
	}
	config.ApplyPreset(&cfg, config.ParsePreset(flagDifficulty))

	if flagVolume >= 0 {
		cfg.Audio.Volume = float64(min(flagVolume, 100)) / 100
		cfg.Audio.Enabled = true
	}
	if flagMute {
		cfg.Audio.Enabled = false
	}
	return cfg, nil
}

// newAudio creates the audio manager and opens the speaker up front so the
// first cue does not stall a frame.
func newAudio(cfg config.DefenderConfig, logger *log.Logger) *audio.Manager {
	mgr := audio.NewManager(audio.Options{
		Enabled: cfg.Audio.Enabled,
		Volume:  cfg.Audio.Volume,
		Logger:  logger,
	})
	_ = mgr.Init() // Failure is logged and leaves the manager silent
	return mgr
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := gameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog := fileLogger()
	defer closeLog()

	mgr := newAudio(cfg, logger)
	defer mgr.Close()

	store := openStore()

	runErr := tui.Run(defender.NewWithConfig(cfg), store, runtimeConfig(), tui.Options{
		Audio:      mgr,
		Player:     currentUser(),
		Difficulty: flagDifficulty,
		Logger:     logger,
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// currentUser names the local player for saved runs.
func currentUser() string {
	for _, env := range []string{"USER", "USERNAME"} {
		if u := os.Getenv(env); u != "" {
			return u
		}
	}
	return ""
}
