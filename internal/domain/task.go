package domain

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// InputKind is what a task expects from the user
type InputKind int

const (
	KindText     InputKind = iota + 1 // single answer checked against Answers
	KindPhotos                        // Photos pictures forwarded to the admin chat
	KindFreeText                      // any text is accepted
)

func (k InputKind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindPhotos:
		return "photos"
	case KindFreeText:
		return "free_text"
	}
	return "unknown"
}

// DefaultMaxAttempts is the retry budget of a text task
const DefaultMaxAttempts = 3

// TaskTexts are the localized strings of one task
type TaskTexts struct {
	Prompt    string
	Success   string
	Retry     string // hint after a wrong answer
	WrongKind string // reminder when the other input kind arrives
	Answer    string // shown when attempts run out
}

// Task is a static quest step
type Task struct {
	Number      int
	Kind        InputKind
	Photos      int
	Answers     []string
	MaxAttempts int
	Texts       map[Language]TaskTexts
}

// ExpectsPhoto reports whether the task consumes photos
func (t Task) ExpectsPhoto() bool {
	return t.Kind == KindPhotos
}

// Accepts reports whether answer matches one of the accepted answers
func (t Task) Accepts(answer string) bool {
	if t.Kind == KindFreeText {
		return true
	}
	given := NormalizeAnswer(answer)
	if given == "" {
		return false
	}
	for _, a := range t.Answers {
		if NormalizeAnswer(a) == given {
			return true
		}
	}
	return false
}

// AttemptLimit returns the retry budget, falling back to DefaultMaxAttempts
func (t Task) AttemptLimit() int {
	if t.MaxAttempts > 0 {
		return t.MaxAttempts
	}
	return DefaultMaxAttempts
}

// PhotoLimit returns how many photos complete the task
func (t Task) PhotoLimit() int {
	if t.Photos > 0 {
		return t.Photos
	}
	return 1
}

// Text returns the task texts for lang, falling back to fallback
func (t Task) Text(lang, fallback Language) TaskTexts {
	if texts, ok := t.Texts[lang]; ok {
		return texts
	}
	return t.Texts[fallback]
}

// NormalizeAnswer trims, case-folds and collapses inner whitespace
func NormalizeAnswer(s string) string {
	s = norm.NFC.String(s)
	s = cases.Fold().String(s)
	return strings.Join(strings.Fields(s), " ")
}
