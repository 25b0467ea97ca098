// ABOUTME: Tests for the share bar widget
// ABOUTME: Verifies proportional fill and bounds clamping

package widgets

import (
	"strings"
	"testing"
)

func countRune(s string, r rune) int {
	return strings.Count(s, string(r))
}

func TestShareBar_ProportionalFill(t *testing.T) {
	bar := ShareBar(50, 10, "#EF4444")

	if got := countRune(bar, '█'); got != 5 {
		t.Errorf("expected 5 filled cells, got %d", got)
	}
	if got := countRune(bar, '░'); got != 5 {
		t.Errorf("expected 5 empty cells, got %d", got)
	}
}

func TestShareBar_ClampsPercent(t *testing.T) {
	if got := countRune(ShareBar(150, 10, "#EF4444"), '█'); got != 10 {
		t.Errorf("expected full bar for >100%%, got %d filled", got)
	}
	if got := countRune(ShareBar(-5, 10, "#EF4444"), '█'); got != 0 {
		t.Errorf("expected empty bar for negative percent, got %d filled", got)
	}
}

func TestShareBar_DefaultWidth(t *testing.T) {
	bar := ShareBar(0, 0, "")
	if got := countRune(bar, '░'); got != 20 {
		t.Errorf("expected default width 20, got %d", got)
	}
}
