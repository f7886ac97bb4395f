package model

import "strings"

// clamp01 bounds a score to [0, 1]. Every exported score passes through it.
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func wordCount(text string) int {
	return len(strings.Fields(text))
}

// substantive is the shared signal floor for free-text answers: more than 20
// characters after trimming and more than 5 words.
func substantive(text string) bool {
	return len(strings.TrimSpace(text)) > 20 && wordCount(text) > 5
}

func checkRating(field string, v int) error {
	if v < 1 || v > 5 {
		return validationErr(field, "must be between 1 and 5, got %d", v)
	}
	return nil
}

func checkOptionalRating(field string, v int) error {
	if v == 0 {
		return nil
	}
	return checkRating(field, v)
}

func checkConfidence(field string, v float64) error {
	if v < 0 || v > 1 {
		return validationErr(field, "must be between 0.0 and 1.0, got %.2f", v)
	}
	return nil
}
