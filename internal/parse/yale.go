package parse

import "econgrads/internal/domain"

// Yale mixes placement tables with accordion sections per class year.
type yaleParser struct{}

func (yaleParser) School() domain.School { return domain.Yale }

func (yaleParser) Parse(doc *Document) ([]domain.CandidateRecord, error) {
	if recs, ok := textOnly(doc, domain.Yale); ok {
		return recs, nil
	}

	c := newCollector(domain.Yale)
	parseTables(doc.HTML, c)

	parseAccordions(doc.HTML, c,
		".accordion-item, .expandable, .panel, .collapse-item",
		".accordion-header, .panel-heading, h3, h4",
		"li, p")

	opts := defaultCardOpts()
	opts.Card = ".person, .profile, .candidate, .views-row, article"
	parseCards(doc.HTML, c, opts)

	return c.records(), nil
}
