package quiz

// MaxResults is the number of areas Results reports at most.
const MaxResults = 3

// MaxTagsPerOption bounds how many affinity tags one option may carry.
const MaxTagsPerOption = 2

// Option is one selectable answer of a question.
type Option struct {
	Label string
	Tags  []string
}

// Question is a single quiz prompt with its ordered options.
type Question struct {
	// Index is the 0-based position of the question in the catalog.
	Index   int
	Prompt  string
	Options []Option
}

// Area is the display identity a tag resolves to.
type Area struct {
	Tag  string
	Name string
	Icon string
}

// Result is a ranked area with its raw score: the number of answers whose
// selected option carried the area's tag.
type Result struct {
	Area  Area
	Score int
}

func (q Question) clone() Question {
	opts := make([]Option, len(q.Options))
	for i, o := range q.Options {
		opts[i] = Option{Label: o.Label, Tags: append([]string(nil), o.Tags...)}
	}
	return Question{Index: q.Index, Prompt: q.Prompt, Options: opts}
}
