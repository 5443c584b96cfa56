package parse

import "econgrads/internal/domain"

type michiganParser struct{}

func (michiganParser) School() domain.School { return domain.Michigan }

func (michiganParser) Parse(doc *Document) ([]domain.CandidateRecord, error) {
	if recs, ok := textOnly(doc, domain.Michigan); ok {
		return recs, nil
	}

	c := newCollector(domain.Michigan)
	parseTables(doc.HTML, c)

	opts := defaultCardOpts()
	opts.Card = ".person, .profile, .candidate, article, .views-row"
	parseCards(doc.HTML, c, opts)

	parseAccordions(doc.HTML, c,
		".accordion-item, details, .collapse, .panel",
		"summary, .accordion-header, h3, h4, .panel-title",
		"li, p, tr")
	parseDefinitionLists(doc.HTML, c)
	return c.records(), nil
}
