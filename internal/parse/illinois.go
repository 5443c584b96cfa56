package parse

import "econgrads/internal/domain"

// Illinois publishes a single placements-by-year-and-employer table.
type illinoisParser struct{}

func (illinoisParser) School() domain.School { return domain.Illinois }

func (illinoisParser) Parse(doc *Document) ([]domain.CandidateRecord, error) {
	if recs, ok := textOnly(doc, domain.Illinois); ok {
		return recs, nil
	}

	c := newCollector(domain.Illinois)
	parseTables(doc.HTML, c)
	parseYearLists(doc.HTML, c)
	return c.records(), nil
}
