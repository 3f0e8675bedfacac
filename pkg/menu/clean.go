// Package menu turns raw OCR output into a readable daily-menu listing.
package menu

import (
	"regexp"
	"strings"
	"unicode"

	"vanderveg-menu/pkg/ocr"
)

var spaceRuns = regexp.MustCompile(`\s+`)

// Clean filters OCR noise out of the recognized lines and normalizes
// whitespace, preserving the top-to-bottom reading order. A line is dropped
// when it is empty after trimming, carries no letter or digit, or its
// confidence is known and below minConfidence (negative confidence means the
// engine reported none and the floor does not apply). Survivors are joined
// with newlines; an all-noise input yields "".
func Clean(lines []ocr.Line, minConfidence float64) string {
	var out []string
	for _, line := range lines {
		if line.Confidence >= 0 && line.Confidence < minConfidence {
			continue
		}
		text := spaceRuns.ReplaceAllString(strings.TrimSpace(line.Text), " ")
		if text == "" || !hasContent(text) {
			continue
		}
		out = append(out, text)
	}
	return strings.Join(out, "\n")
}

// hasContent reports whether a line carries at least one letter or digit,
// filtering out stray punctuation artifacts like "#$%".
func hasContent(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
