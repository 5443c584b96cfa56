package parse

import "econgrads/internal/domain"

// MIT lays out job market candidates as figure/figcaption cells in a
// three-column grid; placement history arrives as a PDF every year.
type mitParser struct{}

func (mitParser) School() domain.School { return domain.MIT }

func (mitParser) Parse(doc *Document) ([]domain.CandidateRecord, error) {
	if recs, ok := textOnly(doc, domain.MIT); ok {
		return recs, nil
	}

	c := newCollector(domain.MIT)
	parseFigures(doc.HTML, c)

	opts := defaultCardOpts()
	opts.Card = ".person, .profile, .candidate, article, .grid-item"
	parseCards(doc.HTML, c, opts)

	parseTables(doc.HTML, c)
	return c.records(), nil
}
