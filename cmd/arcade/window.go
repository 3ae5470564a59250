package main

import (
	"github.com/spf13/cobra"

	"github.com/mlai-aus/arcade/internal/core"
	"github.com/mlai-aus/arcade/internal/platform/gui"
	"github.com/mlai-aus/arcade/internal/registry"
)

var (
	flagCols  int
	flagRows  int
	flagScale int
)

var windowCmd = &cobra.Command{
	Use:   "window <game>",
	Short: "Play a game in a pixel window",
	Long: `Open the specified game in a window. Logos and avatars are drawn
from --assets when given, otherwise as coloured placeholders.

Controls are the same as 'arcade play'; Esc quits.

Examples:
  arcade window shooter --assets ./public
  arcade window tetris --cols 100 --rows 40 --scale 2`,
	Args: cobra.ExactArgs(1),
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	windowCmd.Flags().IntVar(&flagCols, "cols", 100, "Canvas width in cells")
	windowCmd.Flags().IntVar(&flagRows, "rows", 36, "Canvas height in cells")
	windowCmd.Flags().IntVar(&flagScale, "scale", 1, "Window scale factor")
}

func runWindow(_ *cobra.Command, args []string) {
	gameID := args[0]
	if !registry.Exists(gameID) {
		exitErr("unknown game %q (run 'arcade list' to see available games)", gameID)
	}
	if err := configureGames(gameID, flagConfig); err != nil {
		exitErr("%v", err)
	}

	h, err := newHost("arcade")
	if err != nil {
		exitErr("%v", err)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		h.Close()
		exitErr("creating game: %v", err)
	}
	registry.Prepare(game, h.lib, h.lookup())

	cfg := core.DefaultConfig()
	cfg.ScreenW = max(flagCols, 20)
	cfg.ScreenH = max(flagRows, 10)
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed

	runErr := gui.Run(game, cfg, gui.Options{
		Store:   h.store,
		Player:  h.player,
		Logger:  h.logger,
		Assets:  h.lookup(),
		Content: h.contentUpdates(),
		Scale:   flagScale,
	})
	h.Close()

	if runErr != nil {
		exitErr("running window: %v", runErr)
	}
}
