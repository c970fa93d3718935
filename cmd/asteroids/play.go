package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-asteroids/internal/asteroids"
	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/platform/tui"
	"github.com/vovakirdan/tui-asteroids/internal/registry"
	"github.com/vovakirdan/tui-asteroids/internal/storage"
)

var flagDumpSnapshot string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start playing immediately, skipping the menu.

Controls:
  Left/A, Right/D  - Rotate
  Up/W             - Thrust
  Space            - Fire (hold for auto-fire)
  N                - Detonate nuke power-up
  P                - Pause
  R                - Restart
  Ctrl+S           - Save screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - More lives, slower rocks, more power-ups
  normal - Config as written
  hard   - Fewer lives, faster rocks, fewer power-ups
  fixed  - Rock speed never ramps up with score

Examples:
  asteroids play
  asteroids play --difficulty hard
  asteroids play --config ./my-asteroids.yaml
  asteroids play --seed 7 --dump-snapshot final.msgpack`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDumpSnapshot, "dump-snapshot", "", "Write the final game snapshot (msgpack) to this file")
}

// presetName is the preset recorded with saved runs.
func presetName() string {
	if p := config.ParsePreset(flagDifficulty); p != "" {
		return string(p)
	}
	return string(config.DifficultyNormal)
}

// runtimeConfig builds the runtime config from flags and the terminal size.
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

// openStore opens the score database, degrading to no storage on failure.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

func runPlay(_ *cobra.Command, _ []string) {
	logger, closeLog, err := newLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	if g, ok := game.(*asteroids.Game); ok {
		g.SetLogger(logger)
	}

	store := openStore()

	_, runErr := tui.Run(game, store, runtimeConfig(), tui.Options{
		Preset: presetName(),
		Logger: logger,
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}

	if flagDumpSnapshot != "" {
		g, ok := game.(*asteroids.Game)
		if !ok {
			return
		}
		if err := writeSnapshot(g, flagDumpSnapshot); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
}

// writeSnapshot encodes the game's current snapshot to path.
func writeSnapshot(g *asteroids.Game, path string) error {
	snap := g.Snapshot()
	data, err := snap.Encode()
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}
