package main

import (
	"github.com/spf13/cobra"

	"github.com/mlai-aus/arcade/internal/platform/tui"
	"github.com/mlai-aus/arcade/internal/registry"
)

var flagConfig string

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game in the terminal.

Controls:
  Mouse      - Aim and click to shoot (shooter)
  Arrows     - Move the crosshair / move the block
  Space      - Fire at the crosshair
  Enter      - Start (tetris)
  P/Esc      - Pause
  R          - Restart (after game over)
  B          - Back (when paused or over)
  Ctrl+S     - Save a text screenshot
  Q/Ctrl+C   - Quit

The game pauses when the terminal loses focus and resumes when it
regains it.

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  arcade play shooter
  arcade play tetris --difficulty hard
  arcade play shooter --config ./my-shooter.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
}

func runPlay(_ *cobra.Command, args []string) {
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

	runErr := tui.Run(game, runtimeConfig(), tui.Options{
		Store:   h.store,
		Player:  h.player,
		Logger:  h.logger,
		Content: h.contentUpdates(),
	})
	h.Close()

	if runErr != nil {
		exitErr("running game: %v", runErr)
	}
}
