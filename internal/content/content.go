// Package content holds the static records the mini-games display: partner
// logos for the shooter and community testimonials for the grid game.
//
// Records form a closed tagged union (Logo, Testimonial); consumers switch on
// the concrete type instead of probing for fields.
package content

import (
	"fmt"
	"strings"
)

// Kind identifies the shape of a Record.
type Kind int

const (
	KindLogo Kind = iota + 1
	KindTestimonial
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindLogo:
		return "logo"
	case KindTestimonial:
		return "testimonial"
	default:
		return "unknown"
	}
}

// Record is implemented only by Logo and Testimonial.
type Record interface {
	Kind() Kind
	// Label is a short display name.
	Label() string
	// ImagePath is the asset key for the record's picture, may be empty.
	ImagePath() string
	isRecord()
}

// Logo is an organisation shown in the logo cloud.
type Logo struct {
	Name  string `yaml:"name"`
	Image string `yaml:"image"`
	URL   string `yaml:"url,omitempty"`
}

func (Logo) Kind() Kind          { return KindLogo }
func (l Logo) Label() string     { return l.Name }
func (l Logo) ImagePath() string { return l.Image }
func (Logo) isRecord()           {}

// Testimonial is a quote from a community member.
type Testimonial struct {
	Author string `yaml:"author"`
	Role   string `yaml:"role,omitempty"`
	Org    string `yaml:"org,omitempty"`
	Quote  string `yaml:"quote"`
	Image  string `yaml:"image,omitempty"`
}

func (Testimonial) Kind() Kind          { return KindTestimonial }
func (t Testimonial) Label() string     { return t.Author }
func (t Testimonial) ImagePath() string { return t.Image }
func (Testimonial) isRecord()           {}

// Byline returns "Role, Org" with empty parts omitted.
func (t Testimonial) Byline() string {
	parts := make([]string, 0, 2)
	if t.Role != "" {
		parts = append(parts, t.Role)
	}
	if t.Org != "" {
		parts = append(parts, t.Org)
	}
	return strings.Join(parts, ", ")
}

// Initials returns up to two upper-case initials of a label, used by
// placeholder art when an image is unavailable.
func Initials(label string) string {
	var b strings.Builder
	for _, w := range strings.Fields(label) {
		r := []rune(w)[0]
		b.WriteString(strings.ToUpper(string(r)))
		if b.Len() >= 2 {
			break
		}
	}
	if b.Len() == 0 {
		return "?"
	}
	return b.String()
}

// Describe renders a one-line description of any record.
func Describe(r Record) string {
	switch v := r.(type) {
	case Logo:
		return fmt.Sprintf("logo %q", v.Name)
	case Testimonial:
		if by := v.Byline(); by != "" {
			return fmt.Sprintf("testimonial by %s (%s)", v.Author, by)
		}
		return fmt.Sprintf("testimonial by %s", v.Author)
	default:
		return "unknown record"
	}
}

// Library is the full set of records available to the games.
type Library struct {
	Logos        []Logo        `yaml:"logos"`
	Testimonials []Testimonial `yaml:"testimonials"`
}

// Records returns every record, logos first.
func (l Library) Records() []Record {
	out := make([]Record, 0, len(l.Logos)+len(l.Testimonials))
	for _, lg := range l.Logos {
		out = append(out, lg)
	}
	for _, t := range l.Testimonials {
		out = append(out, t)
	}
	return out
}

// ImagePaths returns the distinct non-empty image paths in the library.
func (l Library) ImagePaths() []string {
	seen := make(map[string]bool)
	var paths []string
	for _, r := range l.Records() {
		p := r.ImagePath()
		if p == "" || seen[p] {
			continue
		}
		seen[p] = true
		paths = append(paths, p)
	}
	return paths
}

// Validate reports records that cannot be displayed.
func (l Library) Validate() error {
	for i, lg := range l.Logos {
		if strings.TrimSpace(lg.Name) == "" {
			return fmt.Errorf("content: logo %d has no name", i)
		}
	}
	for i, t := range l.Testimonials {
		if strings.TrimSpace(t.Author) == "" {
			return fmt.Errorf("content: testimonial %d has no author", i)
		}
		if strings.TrimSpace(t.Quote) == "" {
			return fmt.Errorf("content: testimonial %d (%s) has no quote", i, t.Author)
		}
	}
	return nil
}
