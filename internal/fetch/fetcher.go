package fetch

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"econgrads/internal/config"
	"econgrads/internal/domain"

	"github.com/sirupsen/logrus"
)

// Document is one retrieved source for a school.
type Document struct {
	Source  string // URL or upload path
	Content []byte
	Hash    string
	PDF     bool
}

// Result is everything the coordinator needs from one school fetch:
// the documents themselves, the per-source hashes for the next
// ScrapeState, and whether anything changed since the last run.
type Result struct {
	Documents []Document
	Hashes    map[string]string
	Changed   bool
}

type Fetcher struct {
	hc        *http.Client
	limiter   *HostLimiter
	cache     *RawCache
	userAgent string
	log       *logrus.Logger
}

func New(cfg config.Config, cache *RawCache, log *logrus.Logger) *Fetcher {
	overrides := make(map[string]HostRate, len(cfg.Fetch.HostOverrides))
	for host, r := range cfg.Fetch.HostOverrides {
		overrides[host] = HostRate{RequestsPerSecond: r.RequestsPerSecond, Burst: r.Burst}
	}
	return &Fetcher{
		hc: &http.Client{
			Timeout: time.Duration(cfg.Fetch.TimeoutSeconds) * time.Second,
		},
		limiter: NewHostLimiter(
			HostRate{RequestsPerSecond: cfg.Fetch.RequestsPerSecond, Burst: cfg.Fetch.Burst},
			overrides,
		),
		cache:     cache,
		userAgent: cfg.Fetch.UserAgent,
		log:       log,
	}
}

// FetchSchool retrieves every configured source for a school. The
// sources form a unit: the first one that errors fails the whole fetch,
// so a half-fetched school is never parsed. Network errors are reported
// to the caller, never treated as "unchanged".
func (f *Fetcher) FetchSchool(ctx context.Context, school domain.School, src config.SchoolSource, prev domain.SchoolState, force bool) (Result, error) {
	res := Result{Hashes: make(map[string]string)}

	for _, u := range src.URLs {
		doc, err := f.fetchURL(ctx, school, u)
		if err != nil {
			return Result{}, err
		}
		res.Documents = append(res.Documents, doc)
		res.Hashes[u] = doc.Hash
	}
	for _, p := range src.Uploads {
		doc, err := f.loadUpload(ctx, school, p)
		if err != nil {
			return Result{}, err
		}
		res.Documents = append(res.Documents, doc)
		res.Hashes[p] = doc.Hash
	}

	res.Changed = force || hashesChanged(res.Hashes, prev.SourceHashes)
	return res, nil
}

func (f *Fetcher) fetchURL(ctx context.Context, school domain.School, u string) (Document, error) {
	if err := f.limiter.WaitURL(ctx, u); err != nil {
		return Document{}, fmt.Errorf("fetch %s: %w", u, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return Document{}, fmt.Errorf("fetch %s: %w", u, err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.hc.Do(req)
	if err != nil {
		return Document{}, fmt.Errorf("fetch %s: %w", u, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return Document{}, fmt.Errorf("fetch %s: status %d", u, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Document{}, fmt.Errorf("fetch %s: read body: %w", u, err)
	}

	doc := Document{
		Source:  u,
		Content: body,
		Hash:    hashBytes(body),
		PDF:     isPDF(resp.Header.Get("Content-Type"), body),
	}
	f.cacheDoc(ctx, school, doc)
	return doc, nil
}

// loadUpload reads a manually dropped file (typically a PDF placement
// list) from disk instead of the network.
func (f *Fetcher) loadUpload(ctx context.Context, school domain.School, path string) (Document, error) {
	body, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("upload %s: %w", path, err)
	}
	doc := Document{
		Source:  path,
		Content: body,
		Hash:    hashBytes(body),
		PDF:     strings.HasSuffix(strings.ToLower(path), ".pdf") || isPDF("", body),
	}
	f.cacheDoc(ctx, school, doc)
	return doc, nil
}

// cacheDoc writes to the raw cache unconditionally; a cache failure is
// logged but never fails the fetch, caching is debug-only.
func (f *Fetcher) cacheDoc(ctx context.Context, school domain.School, doc Document) {
	if f.cache == nil {
		return
	}
	if err := f.cache.Put(ctx, school, doc.Source, doc.Content, doc.Hash, doc.PDF); err != nil {
		f.log.WithFields(logrus.Fields{
			"school": school,
			"source": doc.Source,
		}).WithError(err).Warn("raw cache write failed")
	}
}

func hashesChanged(cur, prev map[string]string) bool {
	if len(prev) == 0 {
		return true
	}
	// A removed source counts as a change too; otherwise a trimmed
	// source list whose survivors match would read as unchanged and the
	// stale hash would linger forever.
	if len(cur) != len(prev) {
		return true
	}
	for src, h := range cur {
		if prev[src] != h {
			return true
		}
	}
	return false
}

func hashBytes(b []byte) string {
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}

func isPDF(contentType string, body []byte) bool {
	if strings.Contains(strings.ToLower(contentType), "pdf") {
		return true
	}
	return bytes.HasPrefix(body, []byte("%PDF"))
}
