package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-asteroids/internal/config"
)

var flagConfigResolved bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the game configuration",
	Long: `Print the embedded default configuration as YAML, ready to copy to
~/.arcade/configs/asteroids.yaml and edit.

With --resolved, print the configuration a game would actually run with
after config files and --difficulty are applied.

Examples:
  asteroids config > ~/.arcade/configs/asteroids.yaml
  asteroids config --resolved --difficulty hard`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigResolved, "resolved", false, "Print the effective config instead of the defaults")
}

func runConfig(_ *cobra.Command, _ []string) {
	if !flagConfigResolved {
		fmt.Print(string(config.GetDefaultYAML(gameID)))
		return
	}

	cfg, err := config.LoadAsteroids(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if p := config.ParsePreset(flagDifficulty); p != "" {
		config.ApplyAsteroidsPreset(&cfg, p)
	}

	out, err := yaml.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Print(string(out))
}
