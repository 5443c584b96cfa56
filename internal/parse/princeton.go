package parse

import "econgrads/internal/domain"

// Princeton groups placement tables under year headings and lists job
// market candidates as profile cards; older pages use definition
// lists.
type princetonParser struct{}

func (princetonParser) School() domain.School { return domain.Princeton }

func (princetonParser) Parse(doc *Document) ([]domain.CandidateRecord, error) {
	if recs, ok := textOnly(doc, domain.Princeton); ok {
		return recs, nil
	}

	c := newCollector(domain.Princeton)
	parseTables(doc.HTML, c)

	opts := defaultCardOpts()
	opts.Card = ".person, .graduate-profile, .profile-card, .student-profile, .views-row, article, .node"
	parseCards(doc.HTML, c, opts)

	parseYearLists(doc.HTML, c)
	parseDefinitionLists(doc.HTML, c)
	return c.records(), nil
}
