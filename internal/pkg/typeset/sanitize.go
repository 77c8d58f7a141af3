package typeset

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// glyphReplacer rewrites glyphs the core PDF fonts either lack or render as
// garbage into ASCII-safe tokens. Currency signs become textual tokens,
// superscripts become plain digits, and typographic punctuation is folded to
// its ASCII form. The mapping is closed over its own output, so sanitizing
// already-sanitized text is a no-op.
var glyphReplacer = strings.NewReplacer(
	// zero-width marks and BOM
	"\u200B", "",
	"\u200C", "",
	"\u200D", "",
	"\u2060", "",
	"\uFEFF", "",

	// currency
	"₹", "Rs. ",
	"₨", "Rs. ",
	"€", "EUR ",
	"£", "GBP ",
	"¥", "JPY ",
	"¢", "c",

	// superscripts
	"⁰", "0",
	"¹", "1",
	"²", "2",
	"³", "3",
	"⁴", "4",
	"⁵", "5",
	"⁶", "6",
	"⁷", "7",
	"⁸", "8",
	"⁹", "9",
	"⁺", "+",
	"⁻", "-",

	// spaces
	"\u00A0", " ",
	"\u202F", " ",
	"\u2009", " ",

	// quotes and dashes
	"‘", "'",
	"’", "'",
	"“", `"`,
	"”", `"`,
	"–", "-",
	"—", "-",
	"−", "-",
	"…", "...",
	"•", "-",
)

// Sanitize prepares free text for measurement and emission. Idempotent.
func Sanitize(s string) string {
	if s == "" {
		return ""
	}
	s = norm.NFC.String(s)
	return glyphReplacer.Replace(s)
}
