package parse

import "econgrads/internal/domain"

// Maryland wraps each placement year in an accordion panel.
type marylandParser struct{}

func (marylandParser) School() domain.School { return domain.Maryland }

func (marylandParser) Parse(doc *Document) ([]domain.CandidateRecord, error) {
	if recs, ok := textOnly(doc, domain.Maryland); ok {
		return recs, nil
	}

	c := newCollector(domain.Maryland)
	parseAccordions(doc.HTML, c,
		".accordion-item, .panel, .field-item",
		"h3, h4, .panel-title",
		"li, p")
	parseYearLists(doc.HTML, c)
	parseTables(doc.HTML, c)
	return c.records(), nil
}
