package parse

import "econgrads/internal/domain"

// Brown publishes placement results as year headings over plain
// paragraph lists.
type brownParser struct{}

func (brownParser) School() domain.School { return domain.Brown }

func (brownParser) Parse(doc *Document) ([]domain.CandidateRecord, error) {
	if recs, ok := textOnly(doc, domain.Brown); ok {
		return recs, nil
	}

	c := newCollector(domain.Brown)
	parseYearLists(doc.HTML, c)
	parseTables(doc.HTML, c)
	return c.records(), nil
}
