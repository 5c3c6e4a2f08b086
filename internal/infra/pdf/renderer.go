package pdf

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/yanqian/culture-compass/internal/domain/itinerary"
	"github.com/yanqian/culture-compass/pkg/util"
)

// Renderer produces A4 itinerary PDFs with the core Helvetica font.
type Renderer struct {
	brand string
	now   util.Clock
}

// NewRenderer constructs a renderer that stamps brand in the header.
func NewRenderer(brand string) *Renderer {
	if strings.TrimSpace(brand) == "" {
		brand = "Culture Compass"
	}
	return &Renderer{brand: brand, now: util.NowUTC}
}

// ContentType implements itinerary.Renderer.
func (r *Renderer) ContentType() string { return "application/pdf" }

// Extension implements itinerary.Renderer.
func (r *Renderer) Extension() string { return "pdf" }

// Render implements itinerary.Renderer.
func (r *Renderer) Render(doc itinerary.Document) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.SetAutoPageBreak(true, 20)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	// header bar
	pdf.SetFillColor(31, 41, 55)
	pdf.Rect(0, 0, 210, 28, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetXY(20, 8)
	pdf.CellFormat(170, 10, tr(r.brand), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(245, 196, 81)
	pdf.SetXY(20, 18)
	pdf.CellFormat(170, 6, "Cultural Travel Itinerary", "", 1, "L", false, 0, "")

	pdf.SetY(36)
	pdf.SetTextColor(20, 20, 20)
	pdf.SetFont("Helvetica", "B", 16)
	pdf.MultiCell(170, 8, tr(doc.Title), "", "L", false)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.SetTextColor(120, 120, 120)
	pdf.CellFormat(170, 6, "Generated "+r.now().Format("02 Jan 2006, 15:04 UTC"), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	sectionHeader := func(title string) {
		pdf.SetFillColor(31, 41, 55)
		pdf.SetTextColor(255, 255, 255)
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(170, 8, "  "+tr(title), "", 1, "L", true, 0, "")
		pdf.SetTextColor(0, 0, 0)
		pdf.Ln(2)
	}

	if strings.TrimSpace(doc.Description) != "" {
		sectionHeader("Overview")
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(40, 40, 40)
		pdf.MultiCell(170, 5, tr(doc.Description), "", "L", false)
		pdf.Ln(4)
	}

	if len(doc.Days) == 0 {
		pdf.SetFont("Helvetica", "I", 10)
		pdf.SetTextColor(120, 120, 120)
		pdf.CellFormat(170, 7, "No stops planned yet.", "", 1, "L", false, 0, "")
	}
	for _, day := range doc.Days {
		sectionHeader(fmt.Sprintf("Day %d", day.Day))
		for _, entry := range day.Entries {
			pdf.SetFont("Helvetica", "", 10)
			pdf.SetTextColor(100, 100, 100)
			pdf.CellFormat(30, 7, slotLabel(entry.TimeOfDay), "", 0, "L", false, 0, "")
			pdf.SetTextColor(20, 20, 20)
			pdf.SetFont("Helvetica", "B", 10)
			pdf.CellFormat(100, 7, tr(entry.Label), "", 0, "L", false, 0, "")
			pdf.SetFont("Helvetica", "", 9)
			pdf.SetTextColor(100, 100, 100)
			pdf.CellFormat(40, 7, tr(entry.Duration), "", 1, "R", false, 0, "")
		}
		pdf.Ln(3)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf output failed: %w", err)
	}
	return buf.Bytes(), nil
}

func slotLabel(slot itinerary.TimeOfDay) string {
	s := string(slot)
	if s == "" {
		return ""
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

var _ itinerary.Renderer = (*Renderer)(nil)
