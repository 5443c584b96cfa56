package parse

import "econgrads/internal/domain"

// CMU (Tepper) interleaves year headings with placement tables; Heinz
// placements circulate as a PDF.
type cmuParser struct{}

func (cmuParser) School() domain.School { return domain.CMU }

func (cmuParser) Parse(doc *Document) ([]domain.CandidateRecord, error) {
	if recs, ok := textOnly(doc, domain.CMU); ok {
		return recs, nil
	}

	c := newCollector(domain.CMU)
	parseTables(doc.HTML, c)
	parseYearLists(doc.HTML, c)
	return c.records(), nil
}
