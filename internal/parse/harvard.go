package parse

import "econgrads/internal/domain"

type harvardParser struct{}

func (harvardParser) School() domain.School { return domain.Harvard }

func (harvardParser) Parse(doc *Document) ([]domain.CandidateRecord, error) {
	if recs, ok := textOnly(doc, domain.Harvard); ok {
		return recs, nil
	}

	c := newCollector(domain.Harvard)
	parseTables(doc.HTML, c)

	opts := defaultCardOpts()
	opts.Card = ".views-row, .person, .profile, .candidate, article, .node"
	opts.Fields = ".research, .interests, .fields, .research-areas, .field"
	parseCards(doc.HTML, c, opts)

	parseDefinitionLists(doc.HTML, c)
	parseYearLists(doc.HTML, c)
	return c.records(), nil
}
