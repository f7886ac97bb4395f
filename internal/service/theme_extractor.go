package service

import (
	"sort"
	"strings"
)

// defaultThemeTriggers maps each theme to the substrings that signal it.
// Matching is case-insensitive substring matching, not word-boundary
// tokenization; this can over-match inside longer words but mirrors how the
// downstream prompts and reports were tuned.
var defaultThemeTriggers = map[string][]string{
	"leadership":        {"lead", "leading", "manage", "direct", "decision", "responsibility", "delegat"},
	"collaboration":     {"team", "together", "collaborat", "partner", "coordinate", "group"},
	"creativity":        {"creativ", "design", "original", "imagin", "brainstorm", "novel"},
	"problem_solving":   {"problem", "solve", "solution", "troubleshoot", "debug", "fix"},
	"mentoring":         {"mentor", "coach", "teach", "train", "guide", "onboard"},
	"communication":     {"present", "communicat", "explain", "write", "speak", "listen"},
	"learning":          {"learn", "study", "curious", "research", "read", "course"},
	"autonomy":          {"independen", "autonom", "own", "self-direct", "freedom"},
	"structure":         {"organiz", "plan", "process", "detail", "schedule", "systematic"},
	"innovation":        {"innovat", "experiment", "prototype", "improve", "new approach"},
	"helping_others":    {"help", "support", "care", "serve", "volunteer", "empath"},
	"technical_mastery": {"technical", "engineer", "code", "build", "system", "architect"},
	"analysis":          {"analy", "data", "metric", "pattern", "measure", "model"},
	"ambition":          {"ambiti", "goal", "achieve", "growth", "advance", "promot"},
}

// ThemeExtractor scans free text against a fixed theme dictionary. It is a
// pure lookup: the same text always yields the same theme set.
type ThemeExtractor struct {
	triggers map[string][]string
}

// NewThemeExtractor returns an extractor over the default career theme
// dictionary.
func NewThemeExtractor() *ThemeExtractor {
	return &ThemeExtractor{triggers: defaultThemeTriggers}
}

// NewThemeExtractorWithTriggers returns an extractor over a custom
// dictionary, mostly useful in tests.
func NewThemeExtractorWithTriggers(triggers map[string][]string) *ThemeExtractor {
	return &ThemeExtractor{triggers: triggers}
}

// Extract returns the sorted set of themes for which at least one trigger
// substring occurs in the text. Empty text yields an empty set.
func (e *ThemeExtractor) Extract(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	lower := strings.ToLower(text)

	var themes []string
	for theme, triggers := range e.triggers {
		for _, trigger := range triggers {
			if strings.Contains(lower, trigger) {
				themes = append(themes, theme)
				break
			}
		}
	}
	sort.Strings(themes)
	return themes
}
