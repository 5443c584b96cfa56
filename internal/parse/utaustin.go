package parse

import "econgrads/internal/domain"

type utAustinParser struct{}

func (utAustinParser) School() domain.School { return domain.UTAustin }

func (utAustinParser) Parse(doc *Document) ([]domain.CandidateRecord, error) {
	if recs, ok := textOnly(doc, domain.UTAustin); ok {
		return recs, nil
	}

	c := newCollector(domain.UTAustin)
	parseCards(doc.HTML, c, defaultCardOpts())
	parseYearLists(doc.HTML, c)
	parseTables(doc.HTML, c)
	return c.records(), nil
}
