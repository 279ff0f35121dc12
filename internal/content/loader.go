package content

import (
	_ "embed"
	"fmt"
	"log/slog"
	"os"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/abhisek/orienta/internal/quiz"
)

//go:embed default.yaml
var defaultCatalog []byte

// Default returns the built-in catalog.
func Default() (*Content, error) {
	c, err := Parse(defaultCatalog)
	if err != nil {
		return nil, fmt.Errorf("default catalog: %w", err)
	}
	return c, nil
}

// Load returns the catalog at path, or the built-in one when path is empty.
func Load(path string) (*Content, error) {
	if path == "" {
		return Default()
	}
	return LoadFile(path)
}

// LoadFile reads and validates a catalog file.
func LoadFile(path string) (*Content, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	slog.Debug("catalog loaded", "path", path, "questions", c.Catalog.Len())
	return c, nil
}

// Parse decodes YAML catalog data, validates it against the catalog schema,
// checks its version and builds the quiz catalog.
func Parse(data []byte) (*Content, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	if err := validateSchema(doc); err != nil {
		return nil, err
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if err := checkVersion(f.Version); err != nil {
		return nil, err
	}

	catalog, err := quiz.NewCatalog(f.questions(), f.areas())
	if err != nil {
		return nil, err
	}
	return &Content{Title: f.Title, Version: f.Version, Catalog: catalog}, nil
}

// checkVersion accepts any valid semantic version with a supported major.
func checkVersion(v string) error {
	if !semver.IsValid(v) {
		return fmt.Errorf("invalid catalog version %q", v)
	}
	if major := semver.Major(v); major != SupportedMajor {
		return fmt.Errorf("unsupported catalog version %s (want %s.x.y)", v, SupportedMajor)
	}
	return nil
}

func (f File) areas() []quiz.Area {
	out := make([]quiz.Area, len(f.Areas))
	for i, a := range f.Areas {
		out[i] = quiz.Area{Tag: a.Tag, Name: a.Name, Icon: a.Icon}
	}
	return out
}

func (f File) questions() []quiz.Question {
	out := make([]quiz.Question, len(f.Questions))
	for i, q := range f.Questions {
		opts := make([]quiz.Option, len(q.Options))
		for j, o := range q.Options {
			opts[j] = quiz.Option{Label: o.Label, Tags: o.Tags}
		}
		out[i] = quiz.Question{Index: i, Prompt: q.Prompt, Options: opts}
	}
	return out
}
