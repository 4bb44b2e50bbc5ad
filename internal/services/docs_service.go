package services

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"tripplanner/internal/domain/models"
	"tripplanner/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// DocsService menghasilkan PDF travel plan dari teks itinerary.
type DocsService struct {
	RequestID string
	// Now overrides the timestamp printed in the header (tests).
	Now func() time.Time
}

// Margin Letter: 0.5 inch kiri/kanan, 0.7 inch atas/bawah.
const (
	sideMarginMM = 12.7
	topMarginMM  = 17.8
)

// GenerateItineraryPDF renders the itinerary text into a paginated PDF.
// Line breaks become paragraph boundaries; ##/### headings and -,*,• bullet
// markers get light typographic treatment. Empty text still yields a valid
// (near-empty) document.
func (s DocsService) GenerateItineraryPDF(destination string, itinerary models.Itinerary) ([]byte, string, error) {
	utils.LogEvent(s.RequestID, "docs", "generate_itinerary_pdf",
		fmt.Sprintf("destination=%s chars=%d", destination, len(itinerary.Text)))

	pdf := gofpdf.New("P", "mm", "Letter", "")
	pdf.SetTitle("Travel Plan", false)
	pdf.SetMargins(sideMarginMM, topMarginMM, sideMarginMM)
	pdf.SetAutoPageBreak(true, topMarginMM)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.MultiCell(0, 10, "Personalized Travel Plan", "", "", false)

	pdf.SetFont("Helvetica", "", 10)
	generatedAt := time.Now()
	if s.Now != nil {
		generatedAt = s.Now()
	}
	pdf.MultiCell(0, 6, "Generated: "+generatedAt.Format("2006-01-02 15:04"), "", "", false)
	if itinerary.Model != "" {
		pdf.MultiCell(0, 6, "Model: "+itinerary.Model, "", "", false)
	}
	pdf.Ln(4)

	writeItineraryBody(pdf, itinerary.Text)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("Travel_Plan_%s.pdf", safeFilenamePart(destination))
	return buf.Bytes(), filename, nil
}

func writeItineraryBody(pdf *gofpdf.Fpdf, text string) {
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimRight(raw, " \t")

		switch {
		case strings.TrimSpace(line) == "":
			pdf.Ln(3)
		case strings.HasPrefix(line, "## "):
			pdf.Ln(2)
			pdf.SetFont("Helvetica", "B", 14)
			pdf.MultiCell(0, 8, tr(strings.TrimSpace(line[3:])), "", "", false)
			pdf.Ln(1)
		case strings.HasPrefix(line, "### "):
			pdf.SetFont("Helvetica", "B", 12)
			pdf.MultiCell(0, 7, tr(strings.TrimSpace(line[4:])), "", "", false)
		case isBulletLine(line):
			pdf.SetFont("Helvetica", "", 11)
			item := strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(line), "-*•"))
			pdf.MultiCell(0, 6, tr("• "+item), "", "", false)
		default:
			pdf.SetFont("Helvetica", "", 11)
			pdf.MultiCell(0, 6, tr(line), "", "", false)
		}
	}
}

func isBulletLine(line string) bool {
	t := strings.TrimSpace(line)
	return strings.HasPrefix(t, "- ") || strings.HasPrefix(t, "* ") || strings.HasPrefix(t, "•")
}

func safeFilenamePart(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "NA"
	}
	replacer := strings.NewReplacer(" ", "_", "/", "_", "\\", "_", ":", "_", "*", "_", "?", "_", "\"", "_", "<", "_", ">", "_", "|", "_", ",", "_")
	s = replacer.Replace(s)
	if len(s) > 40 {
		s = s[:40]
	}
	return s
}
