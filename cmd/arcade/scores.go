package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mlai-aus/arcade/internal/platform/tui"
	"github.com/mlai-aus/arcade/internal/registry"
	"github.com/mlai-aus/arcade/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresTUI   bool
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores for a game",
	Long: `Display the top high scores for the specified game, with shot
accuracy for games that count shots.

Examples:
  arcade scores shooter
  arcade scores tetris --limit 20
  arcade scores --tui
  arcade scores shooter --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse every game's scores interactively")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the game's scores and shot statistics")
}

func runScores(_ *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		exitErr("opening scores database: %v", err)
	}
	defer store.Close()

	if flagScoresTUI {
		cfg := runtimeConfig()
		if _, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH); err != nil {
			exitErr("%v", err)
		}
		return
	}

	if len(args) == 0 {
		exitErr("a game id is required unless --tui is set")
	}
	gameID := args[0]
	if !registry.Exists(gameID) {
		exitErr("unknown game %q (run 'arcade list' to see available games)", gameID)
	}

	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			exitErr("%v", err)
		}
		fmt.Printf("Cleared scores for %s.\n", gameID)
		return
	}

	if err := printScores(store, gameID); err != nil {
		exitErr("%v", err)
	}
}

func printScores(store *storage.Store, gameID string) error {
	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	scores, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n\n", game.Title())

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'arcade play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	fmt.Printf("Best: %d\n", scores[0].Score)

	if _, ok := game.(registry.ShotReporter); ok {
		totals, err := store.ShotTotals(gameID)
		if err != nil {
			return err
		}
		if totals.Sessions > 0 {
			fmt.Printf("Accuracy: %.1f%% (%d hits / %d shots over %d rounds)\n",
				totals.Accuracy(), totals.Hits, totals.Shots, totals.Sessions)
		}
	}
	return nil
}
