package document

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

// ToPDF lays a rendered document out on A4 pages, one text line per row.
// The plain-text rendering stays the canonical form; the PDF is a print
// convenience around it.
func ToPDF(doc string) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()
	pdf.SetFont("Courier", "", 9)

	tr := pdf.UnicodeTranslatorFromDescriptor("")
	for _, line := range strings.Split(doc, "\n") {
		pdf.CellFormat(0, 4.2, tr(line), "", 1, "L", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to write pdf: %w", err)
	}
	return buf.Bytes(), nil
}
