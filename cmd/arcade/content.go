package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mlai-aus/arcade/internal/content"
)

var flagContentRaw bool

var contentCmd = &cobra.Command{
	Use:   "content",
	Short: "Show the logos and testimonials the games use",
	Long: `Render the content library as styled markdown. The library is read
from --content, ~/.arcade/content.yaml or ./configs/content.yaml, with the
built-in records as a fallback.

Examples:
  arcade content
  arcade content --content ./content.yaml --raw`,
	Run: runContent,
}

func init() {
	contentCmd.Flags().BoolVar(&flagContentRaw, "raw", false, "Print the markdown without styling")
}

func runContent(_ *cobra.Command, _ []string) {
	lib := loadContent(newLogger("arcade"))
	md := content.Markdown(lib)

	if flagContentRaw || !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Print(md)
		return
	}

	width := 80
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		width = min(w, 100)
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		exitErr("creating renderer: %v", err)
	}
	out, err := r.Render(md)
	if err != nil {
		exitErr("rendering content: %v", err)
	}
	fmt.Print(out)
}
