package parse

import "econgrads/internal/domain"

type minnesotaParser struct{}

func (minnesotaParser) School() domain.School { return domain.Minnesota }

func (minnesotaParser) Parse(doc *Document) ([]domain.CandidateRecord, error) {
	if recs, ok := textOnly(doc, domain.Minnesota); ok {
		return recs, nil
	}

	c := newCollector(domain.Minnesota)
	parseTables(doc.HTML, c)

	opts := defaultCardOpts()
	opts.Card = ".person, .profile, .candidate, article, .views-row, .people-listing"
	parseCards(doc.HTML, c, opts)

	parseAccordions(doc.HTML, c,
		".year-section, section, details",
		"h2, h3, h4, summary, .year-header",
		"li, p")
	return c.records(), nil
}
