package typeset

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDevice measures every rune at a fixed width so layout is deterministic
// without a font engine.
type fakeDevice struct {
	pages   int
	current int
	calls   []textCall
}

type textCall struct {
	page int
	x, y float64
	text string
}

const fakeRuneWidth = 5.0

func (d *fakeDevice) SetStyle(st Style) {}

func (d *fakeDevice) Width(text string) float64 {
	return float64(len([]rune(text))) * fakeRuneWidth
}

func (d *fakeDevice) Text(x, y float64, text string) {
	d.calls = append(d.calls, textCall{page: d.current, x: x, y: y, text: text})
}

func (d *fakeDevice) Line(x1, y1, x2, y2 float64) {}

func (d *fakeDevice) AddPage() {
	d.pages++
	d.current = d.pages
}

func (d *fakeDevice) PageCount() int { return d.pages }

func (d *fakeDevice) UsePage(page int) { d.current = page }

func (d *fakeDevice) onPage(page int) []textCall {
	var out []textCall
	for _, c := range d.calls {
		if c.page == page {
			out = append(out, c)
		}
	}
	return out
}

func TestEngineMultiPageHeaderAndFooter(t *testing.T) {
	dev := &fakeDevice{}
	e := New(dev, "VentureLens", "Fintech / Seed")

	e.Title("Startup Evaluation Report")
	e.Section("Executive Summary")
	e.Paragraph(strings.Repeat("word ", 1200))
	e.Finalize()

	require.GreaterOrEqual(t, dev.PageCount(), 2, "1200 words cannot fit one page")

	for page := 1; page <= dev.PageCount(); page++ {
		calls := dev.onPage(page)
		require.NotEmpty(t, calls)

		// header band is redrawn identically on every page
		assert.Equal(t, "VentureLens", calls[0].text, "page %d", page)
		assert.Equal(t, Margin, calls[0].x)
		assert.Equal(t, "Fintech / Seed", calls[1].text)

		// exactly one stamp per page, right-aligned at the fixed offset,
		// carrying the true final page count
		stamp := fmt.Sprintf("Page %d of %d", page, dev.PageCount())
		var stamps []textCall
		for _, c := range calls {
			if strings.HasPrefix(c.text, "Page ") {
				stamps = append(stamps, c)
			}
		}
		require.Len(t, stamps, 1, "page %d", page)
		assert.Equal(t, stamp, stamps[0].text)
		assert.InDelta(t, PageWidth-Margin-dev.Width(stamp), stamps[0].x, 0.001)
		assert.InDelta(t, PageHeight-Margin-10, stamps[0].y, 0.001)
	}
}

func TestEngineNoContentOverlapsFooterBand(t *testing.T) {
	dev := &fakeDevice{}
	e := New(dev, "VentureLens", "")
	e.Paragraph(strings.Repeat("overflow ", 2000))
	e.Finalize()

	for _, c := range dev.calls {
		if strings.HasPrefix(c.text, "Page ") {
			continue
		}
		assert.LessOrEqual(t, c.y, PageHeight-Margin-FooterBand+StyleBody.Size,
			"body text %q leaked into the footer band", c.text)
	}
}

func TestEngineJustification(t *testing.T) {
	dev := &fakeDevice{}
	e := New(dev, "t", "")

	// 15 identical words wrap to two lines; the first must be flush with
	// both margins, the last ragged
	e.Paragraph(strings.Repeat("benchmark ", 15))

	var body []textCall
	for _, c := range dev.calls[2:] { // skip the header pair
		body = append(body, c)
	}
	require.NotEmpty(t, body)

	rows := map[float64][]textCall{}
	for _, c := range body {
		rows[c.y] = append(rows[c.y], c)
	}
	require.Len(t, rows, 2)

	var ys []float64
	for y := range rows {
		ys = append(ys, y)
	}
	if ys[0] > ys[1] {
		ys[0], ys[1] = ys[1], ys[0]
	}

	first := rows[ys[0]]
	last := first[len(first)-1]
	assert.InDelta(t, Margin+ContentWidth, last.x+dev.Width(last.text), 0.001,
		"justified line ends flush at the right margin")
	assert.Equal(t, Margin, first[0].x)

	final := rows[ys[1]]
	require.Len(t, final, 1, "the final line is emitted unjustified in one run")
	assert.Equal(t, Margin, final[0].x)
	assert.Less(t, final[0].x+dev.Width(final[0].text), Margin+ContentWidth,
		"the final line stays ragged")
}

func TestEngineSingleWordLineNotStretched(t *testing.T) {
	dev := &fakeDevice{}
	e := New(dev, "t", "")

	e.Paragraph("short")
	c := dev.calls[len(dev.calls)-1]
	assert.Equal(t, "short", c.text)
	assert.Equal(t, Margin, c.x)
}

func TestEngineBullets(t *testing.T) {
	dev := &fakeDevice{}
	e := New(dev, "t", "")

	e.Bullets([]string{
		"Hire a dedicated data protection officer",
		strings.Repeat("wrap ", 40),
		"",
	})

	var glyphs, hangs []textCall
	for _, c := range dev.calls[2:] {
		if c.text == "-" {
			glyphs = append(glyphs, c)
		} else {
			hangs = append(hangs, c)
		}
	}

	require.Len(t, glyphs, 2, "one glyph per non-empty item, none for the empty one")
	for _, g := range glyphs {
		assert.Equal(t, Margin, g.x)
	}
	for _, h := range hangs {
		assert.Equal(t, Margin+BulletIndent, h.x, "wrapped continuation lines hang at the indent")
	}
}

func TestEngineBlankLineSplitsParagraphs(t *testing.T) {
	subs := splitParagraphs("alpha beta\n\n  \n\ngamma")
	require.Len(t, subs, 2)
	assert.Equal(t, []string{"alpha", "beta"}, subs[0])
	assert.Equal(t, []string{"gamma"}, subs[1])

	assert.Empty(t, splitParagraphs("  \n \n\t\n"))
}

func TestWrapWordsOverlongWord(t *testing.T) {
	measure := func(s string) float64 { return float64(len(s)) * fakeRuneWidth }
	oversized := strings.Repeat("x", 300)

	lines := wrapWords([]string{"a", oversized, "b"}, 100, measure)
	require.Len(t, lines, 3)
	assert.Equal(t, []string{oversized}, lines[1], "an unbreakable word still gets a line")
}
