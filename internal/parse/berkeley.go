package parse

import "econgrads/internal/domain"

type berkeleyParser struct{}

func (berkeleyParser) School() domain.School { return domain.Berkeley }

func (berkeleyParser) Parse(doc *Document) ([]domain.CandidateRecord, error) {
	if recs, ok := textOnly(doc, domain.Berkeley); ok {
		return recs, nil
	}

	c := newCollector(domain.Berkeley)
	parseTables(doc.HTML, c)
	parseCards(doc.HTML, c, defaultCardOpts())
	parseYearLists(doc.HTML, c)
	return c.records(), nil
}
