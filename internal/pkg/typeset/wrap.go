package typeset

import (
	"regexp"
	"strings"
)

var blankLine = regexp.MustCompile(`\n[ \t]*\n+`)

// splitParagraphs breaks sanitized text on blank-line boundaries into
// sub-paragraphs, each reduced to its whitespace-collapsed word sequence.
// Empty sub-paragraphs are dropped.
func splitParagraphs(s string) [][]string {
	var out [][]string
	for _, sub := range blankLine.Split(s, -1) {
		words := strings.Fields(sub)
		if len(words) > 0 {
			out = append(out, words)
		}
	}
	return out
}

// wrapWords greedily packs words into lines no wider than width under the
// given measurer. A single word wider than the line gets a line of its own;
// wrapping never fails.
func wrapWords(words []string, width float64, measure func(string) float64) [][]string {
	var (
		lines  [][]string
		line   []string
		lineW  float64
		spaceW = measure(" ")
	)
	for _, w := range words {
		ww := measure(w)
		if len(line) > 0 && lineW+spaceW+ww > width {
			lines = append(lines, line)
			line = nil
			lineW = 0
		}
		if len(line) == 0 {
			line = []string{w}
			lineW = ww
			continue
		}
		line = append(line, w)
		lineW += spaceW + ww
	}
	if len(line) > 0 {
		lines = append(lines, line)
	}
	return lines
}
