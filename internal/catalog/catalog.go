// Package catalog holds the quest tasks and every user-facing string.
package catalog

import (
	"strings"

	"subquest/internal/domain"

	"golang.org/x/text/language"
)

// Supported lists the languages with a full set of texts, default first
var Supported = []domain.Language{domain.LangRU, domain.LangEN}

// Catalog is the ordered, immutable task list plus localized messages
type Catalog struct {
	tasks    []domain.Task
	messages map[domain.Language]Messages
	fallback domain.Language
	matcher  language.Matcher
}

// New builds the Subotica quest catalog. maxAttempts overrides the retry
// budget of text tasks when positive.
func New(fallback domain.Language, maxAttempts int) *Catalog {
	tasks := suboticaTasks()
	if maxAttempts > 0 {
		for i := range tasks {
			if tasks[i].Kind == domain.KindText {
				tasks[i].MaxAttempts = maxAttempts
			}
		}
	}
	return NewWithTasks(fallback, tasks)
}

// NewWithTasks builds a catalog from an arbitrary task list
func NewWithTasks(fallback domain.Language, tasks []domain.Task) *Catalog {
	tags := make([]language.Tag, 0, len(Supported))
	for _, l := range Supported {
		tags = append(tags, language.Make(string(l)))
	}
	if _, ok := messages[fallback]; !ok {
		fallback = domain.LangRU
	}
	return &Catalog{
		tasks:    tasks,
		messages: messages,
		fallback: fallback,
		matcher:  language.NewMatcher(tags),
	}
}

// Len returns the number of tasks
func (c *Catalog) Len() int {
	return len(c.tasks)
}

// Task returns task n (1-based)
func (c *Catalog) Task(n int) (domain.Task, bool) {
	if n < 1 || n > len(c.tasks) {
		return domain.Task{}, false
	}
	return c.tasks[n-1], true
}

// IsLast reports whether n is the final task
func (c *Catalog) IsLast(n int) bool {
	return n == len(c.tasks)
}

// Fallback returns the language used when a session has none
func (c *Catalog) Fallback() domain.Language {
	return c.fallback
}

// Messages returns the common texts for lang
func (c *Catalog) Messages(lang domain.Language) Messages {
	if m, ok := c.messages[lang]; ok {
		return m
	}
	return c.messages[c.fallback]
}

// ParseLanguage maps a language code or callback payload ("en", "lang_en",
// "en-GB") onto a supported language.
func (c *Catalog) ParseLanguage(code string) (domain.Language, bool) {
	code = strings.TrimPrefix(strings.TrimSpace(code), "lang_")
	if code == "" {
		return "", false
	}
	tag, err := language.Parse(code)
	if err != nil {
		return "", false
	}
	_, idx, conf := c.matcher.Match(tag)
	if conf < language.High {
		return "", false
	}
	return Supported[idx], true
}
