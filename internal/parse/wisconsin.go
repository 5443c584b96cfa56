package parse

import "econgrads/internal/domain"

type wisconsinParser struct{}

func (wisconsinParser) School() domain.School { return domain.Wisconsin }

func (wisconsinParser) Parse(doc *Document) ([]domain.CandidateRecord, error) {
	if recs, ok := textOnly(doc, domain.Wisconsin); ok {
		return recs, nil
	}

	c := newCollector(domain.Wisconsin)
	parseTables(doc.HTML, c)
	parseCards(doc.HTML, c, defaultCardOpts())
	return c.records(), nil
}
