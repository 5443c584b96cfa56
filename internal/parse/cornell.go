package parse

import "econgrads/internal/domain"

type cornellParser struct{}

func (cornellParser) School() domain.School { return domain.Cornell }

func (cornellParser) Parse(doc *Document) ([]domain.CandidateRecord, error) {
	if recs, ok := textOnly(doc, domain.Cornell); ok {
		return recs, nil
	}

	c := newCollector(domain.Cornell)
	parseTables(doc.HTML, c)
	parseCards(doc.HTML, c, defaultCardOpts())
	return c.records(), nil
}
