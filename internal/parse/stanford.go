package parse

import "econgrads/internal/domain"

// Stanford's Drupal theme renders candidates as "hb-card" components
// with the placement in the card subtitle.
type stanfordParser struct{}

func (stanfordParser) School() domain.School { return domain.Stanford }

func (stanfordParser) Parse(doc *Document) ([]domain.CandidateRecord, error) {
	if recs, ok := textOnly(doc, domain.Stanford); ok {
		return recs, nil
	}

	c := newCollector(domain.Stanford)

	parseCards(doc.HTML, c, cardOpts{
		Card:      ".hb-card, .hb-card--horizontal, .views-row",
		Name:      ".hb-card__title a, .hb-card__title, h2 a, h3 a, h2, h3",
		Placement: ".hb-card__subtitle, .placement, .position, .employer",
		Fields:    ".research, .interests, .fields",
	})

	parseTables(doc.HTML, c)

	opts := defaultCardOpts()
	opts.Card = ".person, .profile, article"
	parseCards(doc.HTML, c, opts)

	return c.records(), nil
}
