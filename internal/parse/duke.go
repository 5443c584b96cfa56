package parse

import "econgrads/internal/domain"

type dukeParser struct{}

func (dukeParser) School() domain.School { return domain.Duke }

func (dukeParser) Parse(doc *Document) ([]domain.CandidateRecord, error) {
	if recs, ok := textOnly(doc, domain.Duke); ok {
		return recs, nil
	}

	c := newCollector(domain.Duke)
	parseTables(doc.HTML, c)
	parseYearLists(doc.HTML, c)

	opts := defaultCardOpts()
	opts.Card = ".views-row, .person, article"
	parseCards(doc.HTML, c, opts)
	return c.records(), nil
}
