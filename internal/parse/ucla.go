package parse

import "econgrads/internal/domain"

type uclaParser struct{}

func (uclaParser) School() domain.School { return domain.UCLA }

func (uclaParser) Parse(doc *Document) ([]domain.CandidateRecord, error) {
	if recs, ok := textOnly(doc, domain.UCLA); ok {
		return recs, nil
	}

	c := newCollector(domain.UCLA)
	parseTables(doc.HTML, c)
	parseCards(doc.HTML, c, defaultCardOpts())
	parseYearLists(doc.HTML, c)
	return c.records(), nil
}
