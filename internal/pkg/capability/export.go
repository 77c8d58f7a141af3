package capability

import (
	"bytes"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"

	"venturelens.dev/reportengine/internal/pkg/typeset"
)

// Export produces PDF drawing devices for the typesetter. Loading probes the
// core font metrics once so that a broken environment surfaces as a
// capability-load failure instead of a corrupt document later.
type Export struct{}

func loadExport() (*Export, error) {
	doc := fpdf.New("P", "pt", "A4", "")
	doc.SetFont("Helvetica", "", 10)
	if doc.Err() {
		return nil, errors.Wrap(doc.Error(), "probing core font")
	}
	if doc.GetStringWidth("probe") <= 0 {
		return nil, errors.New("core font metrics unavailable")
	}
	return &Export{}, nil
}

// NewDevice returns a fresh single-document drawing device. The typeset
// engine owns all pagination; automatic page breaking is disabled.
func (e *Export) NewDevice() *PDFDevice {
	doc := fpdf.New("P", "pt", "A4", "")
	doc.SetMargins(0, 0, 0)
	doc.SetAutoPageBreak(false, 0)
	doc.SetDrawColor(120, 120, 120)
	return &PDFDevice{doc: doc}
}

// PDFDevice adapts an fpdf document to typeset.Device.
type PDFDevice struct {
	doc *fpdf.Fpdf
}

var _ typeset.Device = (*PDFDevice)(nil)

func (d *PDFDevice) SetStyle(st typeset.Style) {
	style := ""
	if st.Bold {
		style = "B"
	}
	d.doc.SetFont("Helvetica", style, st.Size)
}

func (d *PDFDevice) Width(text string) float64 {
	return d.doc.GetStringWidth(text)
}

func (d *PDFDevice) Text(x, y float64, text string) {
	d.doc.Text(x, y, text)
}

func (d *PDFDevice) Line(x1, y1, x2, y2 float64) {
	d.doc.Line(x1, y1, x2, y2)
}

func (d *PDFDevice) AddPage() {
	d.doc.AddPage()
}

func (d *PDFDevice) PageCount() int {
	return d.doc.PageCount()
}

func (d *PDFDevice) UsePage(page int) {
	d.doc.SetPage(page)
}

// Bytes closes the document and returns its serialized form.
func (d *PDFDevice) Bytes() ([]byte, error) {
	if d.doc.Err() {
		return nil, errors.Wrap(d.doc.Error(), "document entered error state")
	}
	var buf bytes.Buffer
	if err := d.doc.Output(&buf); err != nil {
		return nil, errors.Wrap(err, "serializing document")
	}
	return buf.Bytes(), nil
}
