package domain

import "time"

// SchoolState is the per-school scrape bookkeeping. SourceHashes maps
// each configured source URL (or upload path) to the sha256 of its last
// fetched content.
type SchoolState struct {
	School       School            `json:"school"`
	SourceHashes map[string]string `json:"source_hashes,omitempty"`
	LastChecked  time.Time         `json:"last_checked"`
	SourceURLs   []string          `json:"source_urls,omitempty"`
}

// Outcome is a school's terminal state for one run.
type Outcome string

const (
	OutcomeFetchFailed   Outcome = "fetch_failed"
	OutcomeUnchangedSkip Outcome = "unchanged_skip"
	OutcomeParseFailed   Outcome = "parse_failed"
	OutcomeMerged        Outcome = "merged"
)

// SchoolResult records how one school ended the run. Err is set for the
// failed outcomes only.
type SchoolResult struct {
	School  School
	Outcome Outcome
	Found   int // records the parser produced
	Kept    int // records surviving the placement filter
	Added   int // new composite keys inserted
	Updated int // existing records that gained fields
	Err     error
}

// RunSummary enumerates every school's outcome so operators can see
// exactly which sources need attention.
type RunSummary struct {
	StartedAt  time.Time
	FinishedAt time.Time
	Forced     bool
	Results    []SchoolResult
}

func (s RunSummary) Count(o Outcome) int {
	n := 0
	for _, r := range s.Results {
		if r.Outcome == o {
			n++
		}
	}
	return n
}

// Succeeded reports schools that completed the pass without error,
// whether they merged records or were skipped as unchanged.
func (s RunSummary) Succeeded() int {
	return s.Count(OutcomeMerged) + s.Count(OutcomeUnchangedSkip)
}

func (s RunSummary) Failed() int {
	return s.Count(OutcomeFetchFailed) + s.Count(OutcomeParseFailed)
}
