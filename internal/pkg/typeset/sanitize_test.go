package typeset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain ascii untouched", "ARR grew 40% YoY", "ARR grew 40% YoY"},
		{"rupee sign", "₹12 Cr ARR", "Rs. 12 Cr ARR"},
		{"rupee ligature", "₨500", "Rs. 500"},
		{"euro and pound", "€2M and £1M", "EUR 2M and GBP 1M"},
		{"smart quotes", "“the team’s moat”", `"the team's moat"`},
		{"dashes", "2023–2024 — strong", "2023-2024 - strong"},
		{"ellipsis and bullet", "runway… • 14 months", "runway... - 14 months"},
		{"superscripts", "10⁹ requests", "109 requests"},
		{"zero width stripped", "chu\u200Brn", "churn"},
		{"byte order mark stripped", "\uFEFFchurn rate", "churn rate"},
		{"nbsp to space", "14\u00A0months", "14 months"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sanitize(tt.in))
		})
	}
}

func TestSanitizeIdempotent(t *testing.T) {
	inputs := []string{
		"₹12 Cr — “good” growth…",
		"plain text",
		"Rs. 12 Cr - \"good\" growth...",
		"10⁹\u200B requests\u00A0per second",
	}
	for _, in := range inputs {
		once := Sanitize(in)
		assert.Equal(t, once, Sanitize(once))
	}
}
