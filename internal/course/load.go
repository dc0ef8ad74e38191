package course

import (
	_ "embed"
	"fmt"
	"os"
	"sync"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"
)

// SupportedFormat is the major version of the course document format this
// build understands.
const SupportedFormat = "v1"

//go:embed content/course.yaml
var embeddedCourse []byte

// document is the on-disk shape of a course file.
type document struct {
	Format   string    `yaml:"format"`
	Title    string    `yaml:"title"`
	Tagline  string    `yaml:"tagline"`
	Features []Feature `yaml:"features"`
	Chapters []Chapter `yaml:"chapters"`
}

// Default returns the course embedded in the binary. It is parsed once per
// process; embedded content that fails validation panics.
var Default = sync.OnceValue(func() *Store {
	s, err := Parse(embeddedCourse)
	if err != nil {
		panic(fmt.Sprintf("embedded course: %v", err))
	}
	return s
})

// Load reads and validates a course document from disk.
func Load(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read course %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("load course %s: %w", path, err)
	}
	return s, nil
}

// Parse decodes and validates a course document.
func Parse(data []byte) (*Store, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: decode yaml: %v", ErrInvalidContent, err)
	}
	if err := validateSchema(raw); err != nil {
		return nil, err
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: decode course: %v", ErrInvalidContent, err)
	}
	if err := checkFormat(doc.Format); err != nil {
		return nil, err
	}
	if err := Validate(doc.Chapters); err != nil {
		return nil, err
	}
	return newStore(doc), nil
}

func checkFormat(format string) error {
	if !semver.IsValid(format) {
		return fmt.Errorf("%w: %q is not a semantic version", ErrUnsupportedFormat, format)
	}
	if major := semver.Major(format); major != SupportedFormat {
		return fmt.Errorf("%w: format %s, want %s.x", ErrUnsupportedFormat, format, SupportedFormat)
	}
	return nil
}
