package menu

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"vanderveg-menu/pkg/ocr"
)

func linesOf(texts ...string) []ocr.Line {
	out := make([]ocr.Line, 0, len(texts))
	for _, t := range texts {
		out = append(out, ocr.Line{Text: t, Confidence: -1})
	}
	return out
}

func TestCleanDropsNoise(t *testing.T) {
	got := Clean(linesOf("Monday", "  ", "Soup   2.50", "#$%"), 0.3)
	require.Equal(t, "Monday\nSoup 2.50", got)
}

func TestCleanAllNoiseYieldsEmptyString(t *testing.T) {
	got := Clean(linesOf("", "   ", "...", "#$%"), 0.3)
	require.Equal(t, "", got)
}

func TestCleanConfidenceFloor(t *testing.T) {
	lines := []ocr.Line{
		{Text: "Ponedeljek, 2.6.", Confidence: 0.91},
		{Text: "wibble", Confidence: 0.05},
		{Text: "Korenčkova juha", Confidence: -1}, // unknown confidence passes
	}
	got := Clean(lines, 0.3)
	require.Equal(t, "Ponedeljek, 2.6.\nKorenčkova juha", got)
}

func TestCleanPreservesOrder(t *testing.T) {
	got := Clean(linesOf("c", "a", "b"), 0.3)
	require.Equal(t, []string{"c", "a", "b"}, strings.Split(got, "\n"))
}

func TestCleanIdempotent(t *testing.T) {
	first := Clean(linesOf("  Monday ", "Soup\t\t2.50", "##", "Torek,  3.6."), 0.3)
	second := Clean(linesOf(strings.Split(first, "\n")...), 0.3)
	require.Equal(t, first, second)
}
