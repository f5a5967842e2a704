package export

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"pcb-research/backend/model"
)

const (
	pdfCellWidth  = 190
	pdfLineHeight = 10
)

// ToPDF renders the records as a flat line dump: a centered title, then per
// record a "{make} - {model_number}" heading followed by one labelled line
// per field and a blank separator line. Not a laid-out table; fixed font,
// fixed cell width, automatic page breaks when content overflows.
func ToPDF(records []model.PCBRecord) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()
	pdf.SetFont("Arial", "", 12)

	pdf.CellFormat(pdfCellWidth, pdfLineHeight, "PCB Research Results", "", 1, "C", false, 0, "")

	for i := range records {
		r := &records[i]
		lines := []string{
			fmt.Sprintf("%s - %s", r.Make, r.ModelNumber),
			fmt.Sprintf("Form Factor: %s", r.FormFactor),
			fmt.Sprintf("Model: %s", r.Model),
			fmt.Sprintf("Use Cases: %s", strings.Join(r.UseCases, ", ")),
			fmt.Sprintf("Purpose: %s", r.Purpose),
			fmt.Sprintf("Market Use: %s", r.MarketUse),
			fmt.Sprintf("Age in Market: %d years", r.AgeInMarket),
			fmt.Sprintf("Competing Products: %s", r.CompetingProducts),
			fmt.Sprintf("Entry Date: %s", r.EntryDate),
			"",
		}
		for _, line := range lines {
			pdf.CellFormat(pdfCellWidth, pdfLineHeight, tr(line), "", 1, "L", false, 0, "")
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("encode pdf export: %w", err)
	}
	return buf.Bytes(), nil
}
