package quiz

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidSelection is returned when an option index is out of range
	// for the current question.
	ErrInvalidSelection = errors.New("invalid selection")

	// ErrNoPreviousQuestion is returned by GoBack on the first question.
	ErrNoPreviousQuestion = errors.New("no previous question")

	// ErrNoCurrentQuestion is returned by CurrentQuestion once the quiz is complete.
	ErrNoCurrentQuestion = errors.New("no current question")

	// ErrUnknownTag is returned when a tag has no area mapping.
	ErrUnknownTag = errors.New("unknown tag")

	// ErrQuizComplete is returned by Answer and GoBack after the last answer.
	ErrQuizComplete = errors.New("quiz already complete")

	// ErrNotComplete is returned by Results before the last answer.
	ErrNotComplete = errors.New("quiz not complete")
)

// ValidationError lists every problem found while building a Catalog.
// Unmapped tags are also reported in UnknownTags, and the error matches
// ErrUnknownTag under errors.Is.
type ValidationError struct {
	Problems    []string
	UnknownTags []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("catalog validation failed:\n  %s", strings.Join(e.Problems, "\n  "))
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrUnknownTag && len(e.UnknownTags) > 0
}
