package parse

import "econgrads/internal/domain"

type washingtonParser struct{}

func (washingtonParser) School() domain.School { return domain.Washington }

func (washingtonParser) Parse(doc *Document) ([]domain.CandidateRecord, error) {
	if recs, ok := textOnly(doc, domain.Washington); ok {
		return recs, nil
	}

	c := newCollector(domain.Washington)
	parseTables(doc.HTML, c)
	parseYearLists(doc.HTML, c)
	return c.records(), nil
}
