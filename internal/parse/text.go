package parse

import (
	"regexp"
	"strconv"
	"strings"

	"econgrads/internal/normalize"
)

var yearRe = regexp.MustCompile(`\b20(1[4-9]|2[0-5])\b`)

// extractYear pulls the first graduation year inside the tracked window
// out of free text. Returns 0 when none is found.
func extractYear(text string) int {
	m := yearRe.FindString(text)
	if m == "" {
		return 0
	}
	y, _ := strconv.Atoi(m)
	return y
}

func cleanText(s string) string {
	return normalize.CleanText(s)
}

// plausibleName filters out header rows, nav text and page chrome that
// table/card strategies would otherwise pick up as people.
func plausibleName(name string) bool {
	if len(name) < 3 || len(name) > 100 {
		return false
	}
	switch strings.ToLower(name) {
	case "name", "candidate", "student", "phd", "n/a":
		return false
	}
	return !normalize.IsGarbage(name)
}

// splitFields turns a research-fields blob into the individual field
// names.
func splitFields(s string) []string {
	s = cleanText(s)
	if s == "" {
		return nil
	}
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == ';' || r == ','
	})
	var out []string
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// headerCol finds the index of the first header cell containing any of
// the given keywords, or def when none matches.
func headerCol(headers []string, keywords []string, def int) int {
	for i, h := range headers {
		for _, kw := range keywords {
			if strings.Contains(h, kw) {
				return i
			}
		}
	}
	return def
}
