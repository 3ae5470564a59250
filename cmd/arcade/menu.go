package main

import (
	"github.com/spf13/cobra"

	"github.com/mlai-aus/arcade/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the arcade with a game picker menu",
	Long: `Start the arcade in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a game, Tab for the
scoreboard. After a game ends, press B to return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select game
  Tab          - Scoreboard
  Q            - Quit

Examples:
  arcade menu
  arcade menu --fps 30
  arcade menu --content ./content.yaml --watch`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	if err := configureGames("", ""); err != nil {
		exitErr("%v", err)
	}

	h, err := newHost("arcade")
	if err != nil {
		exitErr("%v", err)
	}

	runErr := tui.RunSession(runtimeConfig(), tui.SessionOptions{
		Options: tui.Options{
			Store:   h.store,
			Player:  h.player,
			Logger:  h.logger,
			Content: h.contentUpdates(),
		},
		Library: h.lib,
		Assets:  h.lookup(),
	})
	h.Close()

	if runErr != nil {
		exitErr("%v", runErr)
	}
}
