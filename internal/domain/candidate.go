package domain

import (
	"fmt"
	"strings"
)

// Graduation years outside this window are treated as parse noise
// (footers, phone numbers, copyright lines).
const (
	MinGradYear = 2014
	MaxGradYear = 2025
)

// CandidateRecord is one PhD placement observation. GraduationYear 0
// means the source page did not state a year. Enrichment fields
// (CurrentPlacement, CurrentRole, LinkedInURL) stay empty until an
// external stage fills them.
type CandidateRecord struct {
	Name             string
	School           School
	GraduationYear   int
	ResearchFields   []string
	InitialPlacement string
	InitialRole      string
	CurrentPlacement string
	CurrentRole      string
	LinkedInURL      string
}

// Key is the best-effort composite identity used to recognize the same
// candidate across repeated scrapes. Source sites guarantee no natural
// unique key.
type Key struct {
	Name   string
	School School
	Year   int
}

func (r CandidateRecord) Key() Key {
	return Key{
		Name:   strings.ToLower(strings.TrimSpace(r.Name)),
		School: r.School,
		Year:   r.GraduationYear,
	}
}

func (r CandidateRecord) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("candidate has empty name")
	}
	if !r.School.Valid() {
		return fmt.Errorf("candidate %q: unknown school %q", r.Name, r.School)
	}
	if r.GraduationYear != 0 && (r.GraduationYear < MinGradYear || r.GraduationYear > MaxGradYear) {
		return fmt.Errorf("candidate %q: graduation year %d outside %d..%d",
			r.Name, r.GraduationYear, MinGradYear, MaxGradYear)
	}
	return nil
}

// Merge folds an incoming observation into r field by field. A field
// already populated in r is never blanked by an absent incoming value;
// a non-blank incoming value that differs wins. Reports whether
// anything changed.
func (r *CandidateRecord) Merge(in CandidateRecord) bool {
	changed := false

	mergeStr := func(dst *string, v string) {
		v = strings.TrimSpace(v)
		if v == "" || v == *dst {
			return
		}
		*dst = v
		changed = true
	}

	mergeStr(&r.InitialPlacement, in.InitialPlacement)
	mergeStr(&r.InitialRole, in.InitialRole)
	mergeStr(&r.CurrentPlacement, in.CurrentPlacement)
	mergeStr(&r.CurrentRole, in.CurrentRole)
	mergeStr(&r.LinkedInURL, in.LinkedInURL)

	if len(in.ResearchFields) > 0 && !equalFields(r.ResearchFields, in.ResearchFields) {
		r.ResearchFields = append([]string(nil), in.ResearchFields...)
		changed = true
	}
	return changed
}

func equalFields(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
