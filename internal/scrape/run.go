package scrape

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"econgrads/internal/config"
	"econgrads/internal/domain"
	"econgrads/internal/fetch"
	"econgrads/internal/parse"
	"econgrads/internal/store"

	"github.com/sirupsen/logrus"
)

// Fetcher is what the coordinator needs from the fetch layer; the
// concrete implementation lives in internal/fetch.
type Fetcher interface {
	FetchSchool(ctx context.Context, school domain.School, src config.SchoolSource, prev domain.SchoolState, force bool) (fetch.Result, error)
}

// ParserLookup resolves a school's parser. Production code uses
// parse.Lookup; tests substitute spies.
type ParserLookup func(domain.School) (parse.Parser, error)

// Runner performs one incremental pass over all tracked schools.
type Runner struct {
	cfg       config.Config
	fetcher   Fetcher
	lookup    ParserLookup
	storePath string
	statePath string
	log       *logrus.Logger
}

func NewRunner(cfg config.Config, fetcher Fetcher, log *logrus.Logger) *Runner {
	return &Runner{
		cfg:       cfg,
		fetcher:   fetcher,
		lookup:    parse.Lookup,
		storePath: filepath.Join(cfg.App.DataDir, "candidates.csv"),
		statePath: filepath.Join(cfg.App.DataDir, "scrape_state.json"),
		log:       log,
	}
}

// Run executes one pass: for each school, fetch, change-check, parse,
// filter, merge. Per-school fetch and parse failures are downgraded to
// run-summary entries; everything else (unknown school, unreadable or
// unwritable store) aborts the run. Store and state are persisted after
// every school, so an interrupted run loses at most the school in
// flight.
func (r *Runner) Run(ctx context.Context, force bool) (domain.RunSummary, error) {
	summary := domain.RunSummary{StartedAt: time.Now().UTC(), Forced: force}

	lock, err := acquireLock(r.cfg.App.DataDir)
	if err != nil {
		return summary, err
	}
	defer lock.Unlock()

	// Fail fast on registration bugs before touching the network.
	schools := config.TrackedSchools(r.cfg)
	parsers := make(map[domain.School]parse.Parser, len(schools))
	for _, s := range schools {
		p, err := r.lookup(s)
		if err != nil {
			return summary, err
		}
		parsers[s] = p
	}

	st, err := store.LoadState(r.statePath)
	if err != nil {
		return summary, err
	}
	candidates, err := store.Load(r.storePath)
	if err != nil {
		return summary, err
	}
	if err := store.Backup(r.storePath); err != nil {
		return summary, err
	}

	for _, school := range schools {
		res := r.runSchool(ctx, school, parsers[school], candidates, &st, force)
		summary.Results = append(summary.Results, res)

		if err := r.persist(candidates, st); err != nil {
			return summary, err
		}

		f := r.log.WithFields(logrus.Fields{"school": school, "outcome": res.Outcome})
		switch res.Outcome {
		case domain.OutcomeMerged:
			f.WithFields(logrus.Fields{
				"found": res.Found, "kept": res.Kept,
				"added": res.Added, "updated": res.Updated,
			}).Info("school merged")
		case domain.OutcomeUnchangedSkip:
			f.Info("no change, parse skipped")
		default:
			f.WithError(res.Err).Warn("school failed")
		}
	}

	summary.FinishedAt = time.Now().UTC()
	return summary, nil
}

func (r *Runner) runSchool(ctx context.Context, school domain.School, parser parse.Parser, candidates *store.Store, st *store.State, force bool) domain.SchoolResult {
	src := r.cfg.Schools[string(school)]
	prev := st.School(school)
	now := time.Now().UTC()

	fetched, err := r.fetcher.FetchSchool(ctx, school, src, prev, force)
	if err != nil {
		// Fetch failures never masquerade as "unchanged": state keeps
		// its old hashes so the next run retries.
		prev.LastChecked = now
		st.Set(prev)
		return domain.SchoolResult{School: school, Outcome: domain.OutcomeFetchFailed, Err: err}
	}

	entry := domain.SchoolState{
		School:       school,
		SourceHashes: fetched.Hashes,
		LastChecked:  now,
		SourceURLs:   append(append([]string(nil), src.URLs...), src.Uploads...),
	}

	if !fetched.Changed {
		st.Set(entry)
		return domain.SchoolResult{School: school, Outcome: domain.OutcomeUnchangedSkip}
	}

	var records []domain.CandidateRecord
	for _, raw := range fetched.Documents {
		doc, err := parse.NewDocument(school, raw.Source, raw.Content, raw.PDF)
		if err == nil {
			var recs []domain.CandidateRecord
			recs, err = parser.Parse(doc)
			if err == nil {
				records = append(records, recs...)
				continue
			}
		}
		// Keep the old hashes so the broken source still reads as
		// changed next run; previous store contents stay untouched.
		prev.LastChecked = now
		st.Set(prev)
		return domain.SchoolResult{School: school, Outcome: domain.OutcomeParseFailed, Err: err}
	}

	result := domain.SchoolResult{School: school, Outcome: domain.OutcomeMerged, Found: len(records)}
	for _, rec := range records {
		rec = prepare(rec)
		keep, reason := ShouldKeep(r.cfg, rec)
		if !keep {
			r.log.WithFields(logrus.Fields{
				"school": school, "name": rec.Name, "reason": reason,
			}).Debug("record filtered")
			continue
		}
		result.Kept++

		added, updated, err := candidates.Merge(rec)
		if err != nil {
			r.log.WithField("school", school).WithError(err).Debug("record rejected")
			continue
		}
		if added {
			result.Added++
		}
		if updated {
			result.Updated++
		}
	}

	st.Set(entry)
	return result
}

func (r *Runner) persist(candidates *store.Store, st store.State) error {
	if err := store.Save(r.storePath, candidates); err != nil {
		return err
	}
	return store.SaveState(r.statePath, st)
}

// ExitCode maps a finished run to the process exit status: 0 when every
// school succeeded or was skipped, 1 when nothing succeeded, 2 for a
// partial failure.
func ExitCode(summary domain.RunSummary) int {
	switch {
	case summary.Failed() == 0:
		return 0
	case summary.Succeeded() == 0:
		return 1
	default:
		return 2
	}
}

// FormatSummary renders the per-school outcome table operators read at
// the end of a run.
func FormatSummary(summary domain.RunSummary) string {
	out := fmt.Sprintf("run finished in %s: %d merged, %d unchanged, %d failed\n",
		summary.FinishedAt.Sub(summary.StartedAt).Round(time.Millisecond),
		summary.Count(domain.OutcomeMerged),
		summary.Count(domain.OutcomeUnchangedSkip),
		summary.Failed())
	for _, res := range summary.Results {
		line := fmt.Sprintf("  %-14s %s", res.School, res.Outcome)
		if res.Outcome == domain.OutcomeMerged {
			line += fmt.Sprintf(" (found=%d kept=%d added=%d updated=%d)",
				res.Found, res.Kept, res.Added, res.Updated)
		}
		if res.Err != nil {
			line += ": " + res.Err.Error()
		}
		out += line + "\n"
	}
	return out
}
