package parse

import "econgrads/internal/domain"

type uchicagoParser struct{}

func (uchicagoParser) School() domain.School { return domain.UChicago }

func (uchicagoParser) Parse(doc *Document) ([]domain.CandidateRecord, error) {
	if recs, ok := textOnly(doc, domain.UChicago); ok {
		return recs, nil
	}

	c := newCollector(domain.UChicago)
	parseCards(doc.HTML, c, cardOpts{
		Card:      ".person-card, .person, .profile, .views-row, article.candidate",
		Name:      "h2, h3, h4, .name, .person-name, a",
		Placement: ".placement, .position, .job, .employer",
		Fields:    ".fields, .research, .interests, .specialty",
	})
	parseYearLists(doc.HTML, c)
	parseTables(doc.HTML, c)
	return c.records(), nil
}
