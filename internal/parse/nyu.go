package parse

import "econgrads/internal/domain"

// NYU spreads placements across accordion panels on the department
// site and a grid of candidate cards on the Stern page.
type nyuParser struct{}

func (nyuParser) School() domain.School { return domain.NYU }

func (nyuParser) Parse(doc *Document) ([]domain.CandidateRecord, error) {
	if recs, ok := textOnly(doc, domain.NYU); ok {
		return recs, nil
	}

	c := newCollector(domain.NYU)
	parseAccordions(doc.HTML, c,
		".accordion-item, .expandable, .panel, .card",
		".accordion-header, .panel-heading, h3, h4",
		"li, p, div.person")

	parseCards(doc.HTML, c, cardOpts{
		Card:      ".person-grid-item, .faculty-grid-item, .student-card, article",
		Name:      "h2, h3, h4, .name, .title, a",
		Placement: ".placement, .position, .employer, .subtitle",
		Fields:    ".research, .interests, .fields",
	})

	parseTables(doc.HTML, c)
	parseYearLists(doc.HTML, c)
	return c.records(), nil
}
