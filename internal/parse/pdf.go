package parse

import (
	"bytes"
	"fmt"
	"strings"

	"econgrads/internal/domain"

	"github.com/ledongthuc/pdf"
)

// extractPDFText flattens a PDF placement list to plain text, one page
// after another.
func extractPDFText(content []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}

	var b strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		text, err := p.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("pdf page %d: %w", i, err)
		}
		b.WriteString(text)
		b.WriteString("\n")
	}
	if b.Len() == 0 {
		return "", fmt.Errorf("pdf contained no extractable text")
	}
	return b.String(), nil
}

// textOnly handles the PDF path shared by every parser: when a source
// arrived as extracted text instead of HTML, the flat line strategy is
// all there is.
func textOnly(doc *Document, school domain.School) ([]domain.CandidateRecord, bool) {
	if doc.HTML != nil {
		return nil, false
	}
	c := newCollector(school)
	parsePlacementText(doc.Text, c)
	return c.records(), true
}

// parsePlacementText reads year-grouped "Name - Employer" lines out of
// PDF text. PDF placement lists are flat, so this mirrors the HTML
// year-list strategy on lines instead of elements.
func parsePlacementText(text string, c *collector) {
	currentYear := 0
	for _, line := range strings.Split(text, "\n") {
		line = cleanText(line)
		if line == "" {
			continue
		}
		if y := extractYear(line); y != 0 && len(line) < 20 {
			currentYear = y
			continue
		}
		name, placement, ok := splitNamePlacement(line)
		if !ok {
			continue
		}
		year := currentYear
		if y := extractYear(line); y != 0 {
			year = y
		}
		c.add(domain.CandidateRecord{
			Name:             name,
			GraduationYear:   year,
			InitialPlacement: placement,
		})
	}
}
