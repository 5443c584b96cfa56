package normalize

import (
	"sort"
	"strings"
)

// CleanText collapses whitespace and non-breaking spaces.
func CleanText(s string) string {
	s = strings.ReplaceAll(s, " ", " ")
	s = strings.Join(strings.Fields(s), " ")
	return strings.TrimSpace(s)
}

// companyAliases maps a canonical employer name to the variants that
// appear on placement pages. Rebrandings collapse (Facebook -> Meta);
// subsidiaries with their own identity (DeepMind, LinkedIn) stay
// separate.
var companyAliases = map[string][]string{
	"Meta":        {"facebook", "meta", "meta platforms", "fb", "facebook inc"},
	"X":           {"twitter", "x corp", "x.com"},
	"Block":       {"square", "block", "block inc", "square inc", "cash app"},
	"Amazon":      {"amazon", "amazon.com", "aws", "economist, amazon", "amazon pharmacy"},
	"Google":      {"google", "alphabet", "youtube", "waymo", "verily"},
	"Microsoft":   {"microsoft", "microsoft post-doc"},
	"Uber":        {"uber", "uber eats", "uber technologies", "uber freight"},
	"Airbnb":      {"airbnb", "data scientist, airbnb"},
	"Instacart":   {"instacart", "instacart economist"},
	"Two Sigma":   {"two sigma", "twosigma", "2sigma"},
	"D.E. Shaw":   {"de shaw", "d.e. shaw", "deshaw", "d. e. shaw"},
	"Jane Street": {"jane street", "janestreet"},
	"Citadel":     {"citadel", "citadel securities", "citadel llc"},
	"OpenAI":      {"openai", "open ai"},
	"DeepMind":    {"deepmind", "deep mind"},
	"Scale AI":    {"scale ai", "scale.ai", "scaleai"},
	"Navan":       {"navan", "tripactions"},
	"Booking":     {"booking", "booking.com", "priceline"},
}

type aliasPair struct {
	alias     string
	canonical string
}

// aliasTable flattens companyAliases into a fixed match order: longest
// alias first, then lexicographic. Longer aliases win over shorter ones
// ("uber eats" before "uber"), and the order never depends on map
// iteration, so a name matching two families always resolves the same
// way.
var aliasTable = func() []aliasPair {
	var pairs []aliasPair
	for canonical, aliases := range companyAliases {
		for _, a := range aliases {
			pairs = append(pairs, aliasPair{alias: a, canonical: canonical})
		}
	}
	sort.Slice(pairs, func(i, j int) bool {
		if len(pairs[i].alias) != len(pairs[j].alias) {
			return len(pairs[i].alias) > len(pairs[j].alias)
		}
		return pairs[i].alias < pairs[j].alias
	})
	return pairs
}()

// Company canonicalizes an employer name. Unknown names come back
// trimmed but otherwise untouched, so normalization is idempotent.
func Company(name string) string {
	name = CleanText(name)
	if name == "" {
		return ""
	}
	lower := strings.ToLower(name)
	for _, p := range aliasTable {
		if strings.Contains(lower, p.alias) {
			return p.canonical
		}
	}
	return name
}

var academiaKeywords = []string{
	"university", "college", "professor", "faculty",
	"postdoc", "post-doc", "instructor", "academic",
	"research fellow", "lecturer", "assistant prof",
	"associate prof", "visiting scholar", "fellow at",
	"institute for", "school of", "department of",
}

// IsAcademia reports whether a placement string describes an academic
// (or academic-adjacent research) position rather than industry.
func IsAcademia(placement string) bool {
	if placement == "" {
		return false
	}
	lower := strings.ToLower(placement)
	for _, kw := range academiaKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// IsGarbage flags strings that are obviously page chrome, contact info
// or navigation text rather than a person or employer.
func IsGarbage(s string) bool {
	lower := strings.ToLower(s)
	if strings.Contains(s, "@") {
		return true
	}
	for _, marker := range []string{
		"click on", "campus map", "connect with", "phone",
		"building", "website", "econ[at]",
	} {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}
