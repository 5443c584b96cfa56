package parse

import "econgrads/internal/domain"

type pennParser struct{}

func (pennParser) School() domain.School { return domain.Penn }

func (pennParser) Parse(doc *Document) ([]domain.CandidateRecord, error) {
	if recs, ok := textOnly(doc, domain.Penn); ok {
		return recs, nil
	}

	c := newCollector(domain.Penn)
	parseYearLists(doc.HTML, c)
	parseTables(doc.HTML, c)
	return c.records(), nil
}
