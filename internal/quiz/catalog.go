package quiz

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Catalog is the validated, immutable content a quiz runs on: the ordered
// questions and the tag to area mapping.
type Catalog struct {
	questions []Question
	areas     map[string]Area
	areaOrder []string
}

// NormalizeTag returns the canonical form of a tag: trimmed and NFC
// normalized, so composed and decomposed spellings compare equal.
func NormalizeTag(tag string) string {
	return norm.NFC.String(strings.TrimSpace(tag))
}

// NewCatalog validates questions and areas and returns an immutable Catalog.
// Every tag referenced by an option must have an area. All problems are
// reported together in a *ValidationError.
func NewCatalog(questions []Question, areas []Area) (*Catalog, error) {
	var problems []string

	c := &Catalog{
		areas: make(map[string]Area, len(areas)),
	}

	for i, a := range areas {
		tag := NormalizeTag(a.Tag)
		switch {
		case tag == "":
			problems = append(problems, fmt.Sprintf("area %d: empty tag", i))
			continue
		case strings.TrimSpace(a.Name) == "":
			problems = append(problems, fmt.Sprintf("area %q: empty name", tag))
		}
		if _, dup := c.areas[tag]; dup {
			problems = append(problems, fmt.Sprintf("duplicate area tag: %q", tag))
			continue
		}
		c.areas[tag] = Area{Tag: tag, Name: a.Name, Icon: a.Icon}
		c.areaOrder = append(c.areaOrder, tag)
	}

	if len(questions) == 0 {
		problems = append(problems, "no questions")
	}

	var unknown []string
	for i, q := range questions {
		prefix := fmt.Sprintf("question %d", i)
		if strings.TrimSpace(q.Prompt) == "" {
			problems = append(problems, prefix+": empty prompt")
		}
		if len(q.Options) == 0 {
			problems = append(problems, prefix+": no options")
		}

		nq := Question{Index: i, Prompt: q.Prompt, Options: make([]Option, len(q.Options))}
		for j, o := range q.Options {
			oprefix := fmt.Sprintf("%s option %d", prefix, j)
			if strings.TrimSpace(o.Label) == "" {
				problems = append(problems, oprefix+": empty label")
			}
			if len(o.Tags) == 0 || len(o.Tags) > MaxTagsPerOption {
				problems = append(problems, fmt.Sprintf("%s: must carry 1 to %d tags, got %d", oprefix, MaxTagsPerOption, len(o.Tags)))
			}

			tags := make([]string, 0, len(o.Tags))
			for _, t := range o.Tags {
				tag := NormalizeTag(t)
				if slices.Contains(tags, tag) {
					problems = append(problems, fmt.Sprintf("%s: duplicate tag %q", oprefix, tag))
					continue
				}
				if _, ok := c.areas[tag]; !ok {
					problems = append(problems, fmt.Sprintf("%s: tag %q has no area", oprefix, tag))
					if !slices.Contains(unknown, tag) {
						unknown = append(unknown, tag)
					}
				}
				tags = append(tags, tag)
			}
			nq.Options[j] = Option{Label: o.Label, Tags: tags}
		}
		c.questions = append(c.questions, nq)
	}

	if len(problems) > 0 {
		return nil, &ValidationError{Problems: problems, UnknownTags: unknown}
	}
	return c, nil
}

// Len returns the number of questions.
func (c *Catalog) Len() int {
	return len(c.questions)
}

// Question returns a copy of the question at index i.
func (c *Catalog) Question(i int) (Question, bool) {
	if i < 0 || i >= len(c.questions) {
		return Question{}, false
	}
	return c.questions[i].clone(), true
}

// Questions returns a copy of all questions in order.
func (c *Catalog) Questions() []Question {
	out := make([]Question, len(c.questions))
	for i, q := range c.questions {
		out[i] = q.clone()
	}
	return out
}

// Area resolves a tag to its area.
func (c *Catalog) Area(tag string) (Area, bool) {
	a, ok := c.areas[NormalizeTag(tag)]
	return a, ok
}

// Areas returns all areas in declaration order.
func (c *Catalog) Areas() []Area {
	out := make([]Area, 0, len(c.areaOrder))
	for _, tag := range c.areaOrder {
		out = append(out, c.areas[tag])
	}
	return out
}

// TagUsage counts, per area tag, how many options across all questions
// carry that tag. It is also the highest score each area can reach.
func (c *Catalog) TagUsage() map[string]int {
	counts := make(map[string]int, len(c.areas))
	for _, q := range c.questions {
		for _, opt := range q.Options {
			for _, tag := range opt.Tags {
				counts[tag]++
			}
		}
	}
	return counts
}
