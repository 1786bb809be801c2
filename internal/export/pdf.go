package export

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"
)

// WritePDF writes the table as an A4 portrait report: title, date
// label, employee line, then a striped table.
func (t Table) WritePDF(w io.Writer) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(14, 15, 14)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, t.Title, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, t.DateLabel, "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, "Employee: "+t.Member, "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pageWidth, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	colWidth := (pageWidth - left - right) / float64(len(t.Header))

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(63, 81, 181)
	pdf.SetTextColor(255, 255, 255)
	for _, name := range t.Header {
		pdf.CellFormat(colWidth, 7, name, "", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(33, 33, 33)
	for i, row := range t.Rows {
		// Striped body rows, like the original report theme.
		if i%2 == 0 {
			pdf.SetFillColor(240, 243, 247)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}
		for _, value := range row {
			pdf.CellFormat(colWidth, 6, value, "", 0, "L", true, 0, "")
		}
		pdf.Ln(-1)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("writing PDF: %w", err)
	}
	return nil
}
