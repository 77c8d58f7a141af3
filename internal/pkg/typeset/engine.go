// Package typeset lays out the export document with a hand-rolled cursor
// model: pagination, wrapping, and full justification are computed here from
// measured text widths alone, with no dependency on any live screen layout.
// The Device abstracts the PDF backend down to measuring and placing text.
package typeset

import (
	"fmt"
	"strings"
)

// Page geometry in points (A4 portrait) and the fixed layout constants.
const (
	PageWidth  = 595.28
	PageHeight = 841.89

	Margin       = 48.0
	HeaderBand   = 64.0
	FooterBand   = 40.0
	LineHeight   = 14.0
	BulletIndent = 14.0
	SectionGap   = 6.0

	ContentWidth = PageWidth - 2*Margin
)

// Style selects the face the device measures and draws with.
type Style struct {
	Bold bool
	Size float64
}

var (
	StyleHeaderTitle = Style{Bold: true, Size: 14}
	StyleHeaderTag   = Style{Size: 9}
	StyleTitle       = Style{Bold: true, Size: 18}
	StyleSection     = Style{Bold: true, Size: 13}
	StyleLabel       = Style{Bold: true, Size: 11}
	StyleBody        = Style{Size: 10}
	StyleFooter      = Style{Size: 9}
)

// Device is the minimal drawing surface the engine needs. Width and Text
// operate at the most recently set style. UsePage repositions onto an
// already-produced page for the finalization stamps.
type Device interface {
	SetStyle(st Style)
	Width(text string) float64
	Text(x, y float64, text string)
	Line(x1, y1, x2, y2 float64)
	AddPage()
	PageCount() int
	UsePage(page int)
}

// Engine consumes blocks left-to-right with a single vertical cursor. The
// cursor plus the next block's height never exceeds the printable bound
// without a page break being inserted first.
type Engine struct {
	dev     Device
	title   string
	tagline string

	y float64
}

func New(dev Device, headerTitle, headerTagline string) *Engine {
	e := &Engine{dev: dev, title: headerTitle, tagline: headerTagline}
	e.dev.AddPage()
	e.header()
	return e
}

// header draws the fixed header band and resets the cursor to just below it.
// Redrawn identically on every page.
func (e *Engine) header() {
	e.dev.SetStyle(StyleHeaderTitle)
	e.dev.Text(Margin, Margin+14, Sanitize(e.title))
	e.dev.SetStyle(StyleHeaderTag)
	e.dev.Text(Margin, Margin+28, Sanitize(e.tagline))
	e.dev.Line(Margin, Margin+HeaderBand-12, PageWidth-Margin, Margin+HeaderBand-12)
	e.y = Margin + HeaderBand
}

func (e *Engine) breakPage() {
	e.dev.AddPage()
	e.header()
}

// ensureSpace inserts a page break unless n more lines fit above the footer
// band.
func (e *Engine) ensureSpace(n int) {
	if e.y+float64(n)*LineHeight > PageHeight-Margin-FooterBand {
		e.breakPage()
	}
}

// Gap advances the cursor by n line heights, clamped to the page it is on.
func (e *Engine) Gap(n float64) {
	e.y += n * LineHeight
	if e.y > PageHeight-Margin-FooterBand {
		e.y = PageHeight - Margin - FooterBand
	}
}

func (e *Engine) line(st Style, text string, advance float64) {
	e.ensureSpace(1)
	e.dev.SetStyle(st)
	e.dev.Text(Margin, e.y+st.Size, Sanitize(text))
	e.y += advance
}

// Title draws the document title line.
func (e *Engine) Title(s string) {
	e.line(StyleTitle, s, StyleTitle.Size+LineHeight/2)
}

// Section draws a section heading with extra spacing after it.
func (e *Engine) Section(s string) {
	e.ensureSpace(2)
	e.dev.SetStyle(StyleSection)
	e.dev.Text(Margin, e.y+StyleSection.Size, Sanitize(s))
	e.y += StyleSection.Size + SectionGap
}

// Label draws one bold line at label size.
func (e *Engine) Label(s string) {
	e.line(StyleLabel, s, LineHeight)
}

// Paragraph sanitizes, splits on blank-line boundaries, wraps each
// sub-paragraph to the printable width, and fully justifies every wrapped
// line that is neither the sub-paragraph's last line nor a single word.
func (e *Engine) Paragraph(s string) {
	e.dev.SetStyle(StyleBody)
	subs := splitParagraphs(Sanitize(s))
	for si, words := range subs {
		lines := wrapWords(words, ContentWidth, e.dev.Width)
		for li, line := range lines {
			e.ensureSpace(1)
			last := li == len(lines)-1
			if !last && len(line) > 1 {
				e.justifiedLine(line)
			} else {
				e.dev.Text(Margin, e.y+StyleBody.Size, strings.Join(line, " "))
			}
			e.y += LineHeight
		}
		if si < len(subs)-1 {
			e.Gap(0.5)
		}
	}
}

// justifiedLine distributes the slack between the content width and the
// natural text width evenly across inter-word gaps, re-emitting each word at
// its accumulated offset.
func (e *Engine) justifiedLine(words []string) {
	spaceW := e.dev.Width(" ")
	natural := float64(len(words)-1) * spaceW
	for _, w := range words {
		natural += e.dev.Width(w)
	}
	extra := (ContentWidth - natural) / float64(len(words)-1)
	if extra < 0 {
		extra = 0
	}
	x := Margin
	for _, w := range words {
		e.dev.Text(x, e.y+StyleBody.Size, w)
		x += e.dev.Width(w) + spaceW + extra
	}
}

// Bullets draws each item with a bullet glyph at the margin and wrapped text
// hanging at the bullet indent. No justification is applied.
func (e *Engine) Bullets(items []string) {
	e.dev.SetStyle(StyleBody)
	for _, item := range items {
		words := strings.Fields(Sanitize(item))
		if len(words) == 0 {
			continue
		}
		lines := wrapWords(words, ContentWidth-BulletIndent, e.dev.Width)
		for li, line := range lines {
			e.ensureSpace(1)
			if li == 0 {
				e.dev.Text(Margin, e.y+StyleBody.Size, "-")
			}
			e.dev.Text(Margin+BulletIndent, e.y+StyleBody.Size, strings.Join(line, " "))
			e.y += LineHeight
		}
	}
}

// Finalize stamps every produced page with a right-aligned "Page i of N"
// footer at a fixed offset from the bottom margin.
func (e *Engine) Finalize() {
	total := e.dev.PageCount()
	e.dev.SetStyle(StyleFooter)
	for i := 1; i <= total; i++ {
		e.dev.UsePage(i)
		stamp := fmt.Sprintf("Page %d of %d", i, total)
		e.dev.Text(PageWidth-Margin-e.dev.Width(stamp), PageHeight-Margin-10, stamp)
	}
}
