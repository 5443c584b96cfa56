// Package enrich fills in current employment data for candidates the
// scraper only knows by their first placement. It runs as its own
// command: the scrape pass never calls out here.
package enrich

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"econgrads/internal/config"
	"econgrads/internal/domain"
	"econgrads/internal/normalize"
	"econgrads/internal/store"
)

type lookupClient interface {
	Lookup(ctx context.Context, rec domain.CandidateRecord) (Profile, error)
}

// Enricher walks the candidate store and queries the lookup API for
// every record still missing current placement data, then merges the
// answers back through the same field-level merge the scraper uses.
type Enricher struct {
	cfg       config.Config
	client    lookupClient
	storePath string
	log       *logrus.Logger
}

func New(cfg config.Config, client *Client, log *logrus.Logger) *Enricher {
	return &Enricher{
		cfg:       cfg,
		client:    client,
		storePath: filepath.Join(cfg.App.DataDir, "candidates.csv"),
		log:       log,
	}
}

// needsLookup reports whether a record is worth an API call. Records
// already carrying a current placement and a LinkedIn URL are done.
func needsLookup(rec domain.CandidateRecord) bool {
	return rec.CurrentPlacement == "" || rec.LinkedInURL == ""
}

// Run enriches every incomplete record. Individual lookup failures are
// logged and skipped; the store is written back once at the end. Reports
// how many records were updated.
func (e *Enricher) Run(ctx context.Context) (int, error) {
	candidates, err := store.Load(e.storePath)
	if err != nil {
		return 0, err
	}
	if err := store.Backup(e.storePath); err != nil {
		return 0, err
	}

	var todo []domain.CandidateRecord
	for _, rec := range candidates.Records() {
		if needsLookup(rec) {
			todo = append(todo, rec)
		}
	}
	e.log.WithFields(logrus.Fields{"total": candidates.Len(), "todo": len(todo)}).
		Info("enrichment pass starting")
	if len(todo) == 0 {
		return 0, nil
	}

	rps := e.cfg.Enrich.RequestsPerSecond
	if rps <= 0 {
		rps = 1
	}
	limiter := rate.NewLimiter(rate.Limit(rps), 1)

	workers := e.cfg.Enrich.Concurrency
	if workers <= 0 {
		workers = 2
	}

	var mu sync.Mutex
	var profiles []domain.CandidateRecord

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, rec := range todo {
		rec := rec
		g.Go(func() error {
			if err := limiter.Wait(ctx); err != nil {
				return err
			}
			start := time.Now()
			p, err := e.client.Lookup(ctx, rec)
			if err != nil {
				e.log.WithField("name", rec.Name).WithError(err).Warn("lookup failed")
				return nil
			}
			e.log.WithFields(logrus.Fields{
				"name": rec.Name, "took": time.Since(start).Round(time.Millisecond),
			}).Debug("lookup done")

			upd := rec
			upd.CurrentPlacement = normalize.Company(normalize.CleanText(p.CurrentCompany))
			upd.CurrentRole = normalize.CleanText(p.CurrentRole)
			upd.LinkedInURL = normalize.CleanText(p.LinkedInURL)

			mu.Lock()
			profiles = append(profiles, upd)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	updated := 0
	for _, rec := range profiles {
		_, changed, err := candidates.Merge(rec)
		if err != nil {
			continue
		}
		if changed {
			updated++
		}
	}

	if err := store.Save(e.storePath, candidates); err != nil {
		return updated, err
	}
	e.log.WithField("updated", updated).Info("enrichment pass finished")
	return updated, nil
}
