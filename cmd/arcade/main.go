// arcade hosts the MLAI decorative mini-games: a logo shooter and a
// testimonial tetris, playable in the terminal, over SSH or in a window.
//
// Usage:
//
//	arcade list              - List available games
//	arcade play <game>       - Play a game in the terminal
//	arcade window <game>     - Play a game in a pixel window
//	arcade menu              - Start menu to pick games interactively
//	arcade serve             - Start SSH server for remote play
//	arcade scores <game>     - Show high scores for a game
//	arcade content           - Show the logos and testimonials in use
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.arcade/scores.db)
//	--difficulty <preset> - easy, normal, hard or fixed
//	--content <path>      - Content YAML with logos and testimonials
//	--assets <dir>        - Directory image paths are resolved against
//	--watch               - Reload content when the file changes
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/mlai-aus/arcade/internal/games/shooter"
	_ "github.com/mlai-aus/arcade/internal/games/tetris"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagDifficulty string
	flagContent    string
	flagAssets     string
	flagWatch      bool
	flagVolume     float64
	flagVerbose    bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "MLAI Arcade - community logos and testimonials, as games",
	Long: `MLAI Arcade runs the community site's decorative mini-games.

  shooter  - Logo Shooter: logos fly out of a starfield, click to shoot them
  tetris   - Testimonial Tetris: blocks carry testimonials; a full row
             removes every block that touches it

Available commands:
  list     - Show all available games
  play     - Play a specific game in the terminal
  window   - Play a specific game in a window
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores
  content  - Show the loaded content

Examples:
  arcade list
  arcade play shooter
  arcade window tetris --assets ./site/public
  arcade menu --content ./content.yaml --watch
  arcade serve --ssh :2222
  arcade scores shooter`,
	SilenceUsage: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.StringVar(&flagContent, "content", "", "Path to content YAML (logos and testimonials)")
	pf.StringVar(&flagAssets, "assets", "", "Directory that content image paths are relative to")
	pf.BoolVar(&flagWatch, "watch", false, "Reload content when the content file changes")
	pf.Float64Var(&flagVolume, "volume", 0, "Sound effect volume 0..1 (0 = off)")
	pf.BoolVarP(&flagVerbose, "verbose", "v", false, "Debug logging")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(contentCmd)
}
