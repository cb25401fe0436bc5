package report

import (
	"bytes"

	"github.com/jung-kurt/gofpdf"
)

// PDFCanvas renders onto a landscape A4 PDF document via gofpdf.
type PDFCanvas struct {
	pdf *gofpdf.Fpdf
}

func NewPDFCanvas() *PDFCanvas {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	return &PDFCanvas{pdf: pdf}
}

func (c *PDFCanvas) PageWidth() float64 {
	w, _ := c.pdf.GetPageSize()
	return w
}

func (c *PDFCanvas) PageHeight() float64 {
	_, h := c.pdf.GetPageSize()
	return h
}

func (c *PDFCanvas) AddPage() {
	c.pdf.AddPage()
}

func (c *PDFCanvas) FillRect(x, y, w, h float64, fill Color) {
	c.pdf.SetFillColor(fill.R, fill.G, fill.B)
	c.pdf.Rect(x, y, w, h, "F")
}

func (c *PDFCanvas) RoundedRect(x, y, w, h, radius float64, fill, border Color) {
	c.pdf.SetFillColor(fill.R, fill.G, fill.B)
	c.pdf.SetDrawColor(border.R, border.G, border.B)
	c.pdf.SetLineWidth(0.2)
	c.pdf.RoundedRect(x, y, w, h, radius, "1234", "FD")
}

func (c *PDFCanvas) Line(x1, y1, x2, y2, width float64, col Color) {
	c.pdf.SetDrawColor(col.R, col.G, col.B)
	c.pdf.SetLineWidth(width)
	c.pdf.Line(x1, y1, x2, y2)
}

func (c *PDFCanvas) FillCircle(x, y, r float64, fill Color) {
	c.pdf.SetFillColor(fill.R, fill.G, fill.B)
	c.pdf.Circle(x, y, r, "F")
}

func (c *PDFCanvas) Text(x, y float64, s string, st TextStyle) {
	style := ""
	if st.Bold {
		style = "B"
	}
	c.pdf.SetFont("Helvetica", style, st.Size)
	c.pdf.SetTextColor(st.Color.R, st.Color.G, st.Color.B)

	tx := x
	switch st.Align {
	case AlignCenter:
		tx = x - c.pdf.GetStringWidth(s)/2
	case AlignRight:
		tx = x - c.pdf.GetStringWidth(s)
	}
	c.pdf.Text(tx, y, s)
}

// Bytes finalizes the document and returns the PDF content.
func (c *PDFCanvas) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := c.pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
