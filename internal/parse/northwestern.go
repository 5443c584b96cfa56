package parse

import "econgrads/internal/domain"

type northwesternParser struct{}

func (northwesternParser) School() domain.School { return domain.Northwestern }

func (northwesternParser) Parse(doc *Document) ([]domain.CandidateRecord, error) {
	if recs, ok := textOnly(doc, domain.Northwestern); ok {
		return recs, nil
	}

	c := newCollector(domain.Northwestern)
	parseTables(doc.HTML, c)
	parseCards(doc.HTML, c, defaultCardOpts())
	return c.records(), nil
}
