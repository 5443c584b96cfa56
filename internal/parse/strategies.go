package parse

import (
	"strings"

	"econgrads/internal/domain"

	"github.com/PuerkitoBio/goquery"
)

// Shared parsing strategies. Every school page is some mix of placement
// tables, profile cards and year-grouped lists; the per-school parsers
// pick strategies and supply their own selectors.

// collector dedupes records by lowercased name while preserving
// insertion order.
type collector struct {
	school domain.School
	seen   map[string]bool
	out    []domain.CandidateRecord
}

func newCollector(school domain.School) *collector {
	return &collector{school: school, seen: make(map[string]bool)}
}

func (c *collector) add(r domain.CandidateRecord) {
	key := strings.ToLower(strings.TrimSpace(r.Name))
	if key == "" || c.seen[key] {
		return
	}
	c.seen[key] = true
	r.School = c.school
	c.out = append(c.out, r)
}

func (c *collector) records() []domain.CandidateRecord { return c.out }

// parseTable reads one placement table, detecting the name, placement,
// year and fields columns from the header row. overrideYear fills in
// the year for tables grouped under a year heading.
func parseTable(table *goquery.Selection, c *collector, overrideYear int) {
	rows := table.Find("tr")
	if rows.Length() == 0 {
		return
	}

	var headers []string
	rows.First().Find("th, td").Each(func(_ int, cell *goquery.Selection) {
		headers = append(headers, strings.ToLower(cleanText(cell.Text())))
	})

	nameCol := headerCol(headers, []string{"name", "student", "candidate"}, 0)
	placementCol := headerCol(headers, []string{"placement", "employer", "position", "job", "company", "institution"}, -1)
	yearCol := headerCol(headers, []string{"year", "class", "cohort"}, -1)
	fieldsCol := headerCol(headers, []string{"field", "research", "area", "interest", "specialization"}, -1)

	// No labeled placement column: assume name first, placement last.
	if placementCol < 0 && len(headers) > 1 {
		placementCol = len(headers) - 1
	}

	rows.Slice(1, rows.Length()).Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() < 2 {
			return
		}
		cellText := func(i int) string {
			if i < 0 || i >= cells.Length() {
				return ""
			}
			return cleanText(cells.Eq(i).Text())
		}

		name := cellText(nameCol)
		if !plausibleName(name) {
			return
		}

		year := overrideYear
		if yearCol >= 0 {
			if y := extractYear(cellText(yearCol)); y != 0 {
				year = y
			}
		}
		if year == 0 {
			year = extractYear(cleanText(row.Text()))
		}

		c.add(domain.CandidateRecord{
			Name:             name,
			GraduationYear:   year,
			ResearchFields:   splitFields(cellText(fieldsCol)),
			InitialPlacement: cellText(placementCol),
		})
	})
}

// parseTables handles pages where each table sits under a year heading
// ("2024 Placement Information"). Headings and tables are walked in
// document order so the year context follows the page.
func parseTables(doc *goquery.Document, c *collector) {
	currentYear := 0
	doc.Find("h2, h3, h4, table").Each(func(_ int, sel *goquery.Selection) {
		if goquery.NodeName(sel) == "table" {
			parseTable(sel, c, currentYear)
			return
		}
		text := cleanText(sel.Text())
		if y := extractYear(text); y != 0 && len(text) < 40 {
			currentYear = y
		}
	})
}

type cardOpts struct {
	Card      string // container selector
	Name      string // name element inside the card
	Placement string
	Fields    string
}

func defaultCardOpts() cardOpts {
	return cardOpts{
		Card:      ".views-row, .node, article, .person, .candidate, .profile, .person-teaser",
		Name:      "h2 a, h3 a, h4 a, h2, h3, h4, .title a, .name a, .title, .name",
		Placement: ".placement, .position, .employer, .company, .job-placement",
		Fields:    ".research, .interests, .fields, .research-interests, .specialization",
	}
}

// parseCards reads profile-card layouts (job market candidate pages).
func parseCards(doc *goquery.Document, c *collector, opts cardOpts) {
	doc.Find(opts.Card).Each(func(_ int, card *goquery.Selection) {
		name := cleanText(card.Find(opts.Name).First().Text())
		if !plausibleName(name) {
			return
		}

		placement := ""
		if opts.Placement != "" {
			placement = cleanText(card.Find(opts.Placement).First().Text())
		}
		var fields []string
		if opts.Fields != "" {
			fields = splitFields(card.Find(opts.Fields).First().Text())
		}

		c.add(domain.CandidateRecord{
			Name:             name,
			GraduationYear:   extractYear(cleanText(card.Text())),
			ResearchFields:   fields,
			InitialPlacement: placement,
		})
	})
}

var listSeparators = []string{" - ", " – ", ": ", ", "}

// parseYearLists reads "2023" headings followed by "Name - Employer"
// list items or paragraphs.
func parseYearLists(doc *goquery.Document, c *collector) {
	currentYear := 0
	doc.Find("h2, h3, h4, li, p").Each(func(_ int, sel *goquery.Selection) {
		text := cleanText(sel.Text())
		if y := extractYear(text); y != 0 && len(text) < 20 {
			currentYear = y
			return
		}
		if currentYear == 0 {
			return
		}
		name, placement, ok := splitNamePlacement(text)
		if !ok {
			return
		}
		c.add(domain.CandidateRecord{
			Name:             name,
			GraduationYear:   currentYear,
			InitialPlacement: placement,
		})
	})
}

func splitNamePlacement(text string) (name, placement string, ok bool) {
	for _, sep := range listSeparators {
		i := strings.Index(text, sep)
		if i <= 0 {
			continue
		}
		name = strings.TrimSpace(text[:i])
		placement = strings.TrimSpace(text[i+len(sep):])
		if plausibleName(name) && placement != "" {
			return name, placement, true
		}
		return "", "", false
	}
	return "", "", false
}

// parseFigures reads figure/figcaption grids (MIT's job market page).
// The first line of the caption is the name, the rest are research
// fields.
func parseFigures(doc *goquery.Document, c *collector) {
	doc.Find("figure").Each(func(_ int, fig *goquery.Selection) {
		caption := fig.Find("figcaption").First()
		if caption.Length() == 0 {
			return
		}

		name := cleanText(caption.Find("a").First().Text())
		var fields []string
		if lines := captionLines(caption); len(lines) > 0 {
			if name == "" {
				name = lines[0]
			}
			if len(lines) > 1 {
				fields = lines[1:]
			}
		}
		if !plausibleName(name) {
			return
		}

		c.add(domain.CandidateRecord{
			Name:           name,
			GraduationYear: extractYear(cleanText(caption.Text())),
			ResearchFields: fields,
		})
	})
}

func captionLines(caption *goquery.Selection) []string {
	var lines []string
	for _, l := range strings.Split(caption.Text(), "\n") {
		if l = cleanText(l); l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}

// parseAccordions reads collapsible year sections: a header naming the
// year, a body of "Name - Employer" items.
func parseAccordions(doc *goquery.Document, c *collector, sectionSel, headerSel, itemSel string) {
	doc.Find(sectionSel).Each(func(_ int, section *goquery.Selection) {
		year := extractYear(cleanText(section.Find(headerSel).First().Text()))
		section.Find(itemSel).Each(func(_ int, item *goquery.Selection) {
			name, placement, ok := splitNamePlacement(cleanText(item.Text()))
			if !ok {
				return
			}
			c.add(domain.CandidateRecord{
				Name:             name,
				GraduationYear:   year,
				InitialPlacement: placement,
			})
		})
	})
}

// parseDefinitionLists reads dl layouts where dt is the candidate and
// dd the placement.
func parseDefinitionLists(doc *goquery.Document, c *collector) {
	doc.Find("dl").Each(func(_ int, dl *goquery.Selection) {
		dl.Find("dt").Each(func(_ int, dt *goquery.Selection) {
			name := cleanText(dt.Text())
			if !plausibleName(name) {
				return
			}
			dd := dt.NextFiltered("dd")
			c.add(domain.CandidateRecord{
				Name:             name,
				GraduationYear:   extractYear(name + " " + cleanText(dd.Text())),
				InitialPlacement: cleanText(dd.Text()),
			})
		})
	})
}
