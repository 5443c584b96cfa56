package parse

import "econgrads/internal/domain"

// Columbia puts an H3 year heading before each placement table.
type columbiaParser struct{}

func (columbiaParser) School() domain.School { return domain.Columbia }

func (columbiaParser) Parse(doc *Document) ([]domain.CandidateRecord, error) {
	if recs, ok := textOnly(doc, domain.Columbia); ok {
		return recs, nil
	}

	c := newCollector(domain.Columbia)
	parseTables(doc.HTML, c)

	opts := defaultCardOpts()
	opts.Card = ".person, .profile, .candidate, article, .views-row, .faculty-member"
	parseCards(doc.HTML, c, opts)

	parseAccordions(doc.HTML, c,
		".placement-year, .year-section, details, .accordion-item",
		"summary, h3, h4",
		"li, p")
	return c.records(), nil
}
