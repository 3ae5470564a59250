package content

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/content.yaml
var defaultContentYAML []byte

// Parse decodes a content YAML document and validates it.
func Parse(data []byte) (Library, error) {
	var lib Library
	if err := yaml.Unmarshal(data, &lib); err != nil {
		return Library{}, fmt.Errorf("content: cannot parse: %w", err)
	}
	if err := lib.Validate(); err != nil {
		return Library{}, err
	}
	return lib, nil
}

// Default returns the embedded library.
func Default() Library {
	lib, err := Parse(defaultContentYAML)
	if err != nil {
		return fallbackLibrary() // Fallback to hardcoded if embed fails
	}
	return lib
}

func fallbackLibrary() Library {
	return Library{
		Logos: []Logo{{Name: "MLAI"}},
		Testimonials: []Testimonial{{
			Author: "MLAI Community",
			Quote:  "Build things with people who care about AI.",
		}},
	}
}

// Load reads content records.
// Search order: customPath -> ~/.arcade/content.yaml -> ./configs/content.yaml -> embedded default
func Load(customPath string) (Library, error) {
	if customPath != "" {
		return LoadFile(customPath)
	}

	if home, err := os.UserHomeDir(); err == nil {
		if lib, err := LoadFile(filepath.Join(home, ".arcade", "content.yaml")); err == nil {
			return lib, nil
		}
	}

	if lib, err := LoadFile(filepath.Join("configs", "content.yaml")); err == nil {
		return lib, nil
	}

	return Default(), nil
}

// LoadFile reads and parses a single content file.
func LoadFile(path string) (Library, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Library{}, fmt.Errorf("content: cannot read %s: %w", path, err)
	}
	lib, err := Parse(data)
	if err != nil {
		return Library{}, fmt.Errorf("%w (in %s)", err, path)
	}
	return lib, nil
}
