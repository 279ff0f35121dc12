package content

import "github.com/abhisek/orienta/internal/quiz"

// SupportedMajor is the catalog file major version this build understands.
const SupportedMajor = "v1"

// File is the on-disk YAML shape of a quiz catalog.
type File struct {
	Version   string         `yaml:"version" json:"version"`
	Title     string         `yaml:"title,omitempty" json:"title,omitempty"`
	Areas     []AreaSpec     `yaml:"areas" json:"areas"`
	Questions []QuestionSpec `yaml:"questions" json:"questions"`
}

// AreaSpec maps a tag to its display identity.
type AreaSpec struct {
	Tag  string `yaml:"tag" json:"tag"`
	Name string `yaml:"name" json:"name"`
	Icon string `yaml:"icon,omitempty" json:"icon,omitempty"`
}

// QuestionSpec is one question with its ordered options.
type QuestionSpec struct {
	Prompt  string       `yaml:"prompt" json:"prompt"`
	Options []OptionSpec `yaml:"options" json:"options"`
}

// OptionSpec is one answer option with its affinity tags.
type OptionSpec struct {
	Label string   `yaml:"label" json:"label"`
	Tags  []string `yaml:"tags" json:"tags"`
}

// Content is a loaded and validated catalog file.
type Content struct {
	Title   string
	Version string
	Catalog *quiz.Catalog
}
