package service

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractEmptyText(t *testing.T) {
	e := NewThemeExtractor()
	assert.Empty(t, e.Extract(""))
	assert.Empty(t, e.Extract("   \n\t  "))
}

func TestExtractIsCaseInsensitive(t *testing.T) {
	e := NewThemeExtractor()
	lower := e.Extract("i love to mentor junior engineers")
	upper := e.Extract("I LOVE TO MENTOR JUNIOR ENGINEERS")
	assert.Equal(t, lower, upper)
	assert.Contains(t, lower, "mentoring")
}

func TestExtractReturnsSortedUniqueThemes(t *testing.T) {
	e := NewThemeExtractor()
	themes := e.Extract("I lead a team to debug data problems and teach juniors")
	assert.True(t, sort.StringsAreSorted(themes))

	seen := map[string]bool{}
	for _, theme := range themes {
		assert.False(t, seen[theme], "theme %q appears twice", theme)
		seen[theme] = true
	}

	assert.Contains(t, themes, "leadership")
	assert.Contains(t, themes, "collaboration")
	assert.Contains(t, themes, "problem_solving")
	assert.Contains(t, themes, "analysis")
	assert.Contains(t, themes, "mentoring")
}

func TestExtractSubstringMatching(t *testing.T) {
	e := NewThemeExtractor()
	// "leader" contains the "lead" trigger; substring matching is intentional.
	assert.Contains(t, e.Extract("she is a natural leader"), "leadership")
}

func TestExtractDeterministic(t *testing.T) {
	e := NewThemeExtractor()
	text := "I organize processes and plan experiments with the team"
	first := e.Extract(text)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, e.Extract(text))
	}
}

func TestExtractWithCustomTriggers(t *testing.T) {
	e := NewThemeExtractorWithTriggers(map[string][]string{
		"surfing": {"wave", "board"},
	})
	assert.Equal(t, []string{"surfing"}, e.Extract("caught a great wave today"))
	assert.Empty(t, e.Extract("I lead a team"), "custom dictionary replaces the default")
}
