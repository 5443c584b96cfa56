package parse

import "econgrads/internal/domain"

// Virginia keeps its whole placement history in one long table.
type virginiaParser struct{}

func (virginiaParser) School() domain.School { return domain.Virginia }

func (virginiaParser) Parse(doc *Document) ([]domain.CandidateRecord, error) {
	if recs, ok := textOnly(doc, domain.Virginia); ok {
		return recs, nil
	}

	c := newCollector(domain.Virginia)
	parseTables(doc.HTML, c)
	return c.records(), nil
}
