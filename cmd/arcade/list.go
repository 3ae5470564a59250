package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mlai-aus/arcade/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long:  `Shows every registered game, how it is driven and your best score.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()
	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	store := openStore(newLogger("arcade"))
	if store != nil {
		defer store.Close()
	}

	idW, titleW := len("ID"), len("Title")
	for _, g := range games {
		idW = max(idW, len(g.ID))
		titleW = max(titleW, len(g.Title))
	}

	fmt.Printf("  %-*s  %-*s  %-22s  %s\n", idW, "ID", titleW, "Title", "Features", "Best")
	fmt.Printf("  %-*s  %-*s  %-22s  %s\n", idW, "--", titleW, "-----", "--------", "----")
	for _, g := range games {
		best := "-"
		if store != nil {
			if score, err := store.HighScore(g.ID); err == nil && score > 0 {
				best = fmt.Sprint(score)
			}
		}
		fmt.Printf("  %-*s  %-*s  %-22s  %s\n", idW, g.ID, titleW, g.Title, features(g.ID), best)
	}

	fmt.Println()
	fmt.Println("Run 'arcade play <id>' or 'arcade window <id>' to play a game.")
}

// features names the optional capabilities a game implements.
func features(id string) string {
	g, err := registry.Create(id)
	if err != nil {
		return "?"
	}
	var out []string
	if _, ok := g.(registry.IntervalGame); ok {
		out = append(out, "timer")
	}
	if _, ok := g.(registry.ContentReceiver); ok {
		out = append(out, "content")
	}
	if _, ok := g.(registry.AssetConsumer); ok {
		out = append(out, "images")
	}
	if _, ok := g.(registry.ShotReporter); ok {
		out = append(out, "accuracy")
	}
	if len(out) == 0 {
		return "-"
	}
	return strings.Join(out, ",")
}
