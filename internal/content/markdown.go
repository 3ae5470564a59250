package content

import (
	"fmt"
	"strings"
)

// Markdown renders the library as a markdown document: a logo list
// followed by one quote block per testimonial.
func Markdown(lib Library) string {
	var b strings.Builder

	b.WriteString("# Community\n\n")
	if len(lib.Logos) > 0 {
		b.WriteString("## Logos\n\n")
		for _, l := range lib.Logos {
			if l.URL != "" {
				fmt.Fprintf(&b, "- [%s](%s)", l.Name, l.URL)
			} else {
				fmt.Fprintf(&b, "- **%s**", l.Name)
			}
			if l.Image == "" {
				b.WriteString(" _(no image)_")
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if len(lib.Testimonials) > 0 {
		b.WriteString("## Testimonials\n\n")
		for _, t := range lib.Testimonials {
			for _, line := range strings.Split(strings.TrimSpace(t.Quote), "\n") {
				fmt.Fprintf(&b, "> %s\n", line)
			}
			fmt.Fprintf(&b, ">\n> - **%s**", t.Author)
			if by := t.Byline(); by != "" {
				fmt.Fprintf(&b, ", %s", by)
			}
			b.WriteString("\n\n")
		}
	}

	return b.String()
}
