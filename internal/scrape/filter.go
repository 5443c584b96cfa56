package scrape

import (
	"strings"

	"econgrads/internal/config"
	"econgrads/internal/domain"
	"econgrads/internal/normalize"
)

// ShouldKeep decides whether a parsed record belongs in the candidate
// store. Placement pages are full of chrome and academic placements;
// the store tracks industry hires only.
func ShouldKeep(cfg config.Config, rec domain.CandidateRecord) (keep bool, reason string) {
	if normalize.IsGarbage(rec.Name) || normalize.IsGarbage(rec.InitialPlacement) {
		return false, "garbage"
	}
	if strings.TrimSpace(rec.InitialPlacement) == "" {
		return false, "no_placement"
	}
	if cfg.Filters.DropAcademia && normalize.IsAcademia(rec.InitialPlacement) {
		return false, "academia"
	}
	if !matchesEmployer(cfg.Filters.EmployersKeep, rec.InitialPlacement) {
		return false, "no_employer_match"
	}
	return true, ""
}

// matchesEmployer requires at least one keep-list hit. An empty keep
// list keeps everything that survived the other filters.
func matchesEmployer(keep []string, placement string) bool {
	if len(keep) == 0 {
		return true
	}
	lower := strings.ToLower(placement)
	for _, k := range keep {
		k = strings.ToLower(strings.TrimSpace(k))
		if k == "" {
			continue
		}
		if strings.Contains(lower, k) {
			return true
		}
	}
	return false
}

// prepare cleans and canonicalizes a record before it hits the store.
func prepare(rec domain.CandidateRecord) domain.CandidateRecord {
	rec.Name = normalize.CleanText(rec.Name)
	rec.InitialPlacement = normalize.Company(rec.InitialPlacement)
	rec.CurrentPlacement = normalize.Company(rec.CurrentPlacement)
	rec.InitialRole = normalize.CleanText(rec.InitialRole)
	rec.CurrentRole = normalize.CleanText(rec.CurrentRole)
	return rec
}
