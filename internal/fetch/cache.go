package fetch

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"econgrads/internal/domain"

	_ "modernc.org/sqlite"
)

// RawCache stores every fetched document on disk for offline debugging,
// one file per retrieval, with a sqlite index of what was fetched when.
// Nothing in the pipeline reads it back; it exists so a broken parser
// can be rerun against the exact bytes a site served.
type RawCache struct {
	dir string
	db  *sql.DB
}

type CacheEntry struct {
	School    domain.School
	Source    string
	Hash      string
	Path      string
	Size      int64
	FetchedAt time.Time
}

func OpenRawCache(dataDir string) (*RawCache, error) {
	dir := filepath.Join(dataDir, "raw")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("raw cache dir: %w", err)
	}

	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)", filepath.Join(dir, "index.db"))
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("raw cache index: %w", err)
	}
	db.SetMaxOpenConns(1) // sqlite wants one writer

	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS raw_cache (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  school TEXT NOT NULL,
  source TEXT NOT NULL,
  content_hash TEXT NOT NULL,
  path TEXT NOT NULL,
  size INTEGER NOT NULL,
  fetched_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_raw_cache_school ON raw_cache(school, fetched_at DESC);
`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("raw cache migrate: %w", err)
	}

	return &RawCache{dir: dir, db: db}, nil
}

func (c *RawCache) Close() error {
	if c == nil || c.db == nil {
		return nil
	}
	return c.db.Close()
}

// Put writes one retrieved document and records it in the index.
func (c *RawCache) Put(ctx context.Context, school domain.School, source string, body []byte, hash string, isPDF bool) error {
	now := time.Now().UTC()

	ext := ".html"
	if isPDF {
		ext = ".pdf"
	}
	srcSum := sha256.Sum256([]byte(source))
	name := fmt.Sprintf("%s-%s-%d%s",
		school, hex.EncodeToString(srcSum[:])[:12], now.UnixNano(), ext)
	path := filepath.Join(c.dir, name)

	if err := os.WriteFile(path, body, 0o644); err != nil {
		return fmt.Errorf("raw cache write: %w", err)
	}

	_, err := c.db.ExecContext(ctx, `
INSERT INTO raw_cache(school, source, content_hash, path, size, fetched_at)
VALUES(?,?,?,?,?,?);`,
		string(school), source, hash, path, int64(len(body)), now.Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("raw cache index insert: %w", err)
	}
	return nil
}

// List returns cached retrievals, newest first, optionally filtered to
// one school. Debugging surface only.
func (c *RawCache) List(ctx context.Context, school string, limit int) ([]CacheEntry, error) {
	if limit <= 0 {
		limit = 100
	}
	q := `
SELECT school, source, content_hash, path, size, fetched_at
FROM raw_cache `
	args := []any{}
	if school != "" {
		q += `WHERE school = ? `
		args = append(args, school)
	}
	q += `ORDER BY fetched_at DESC LIMIT ?;`
	args = append(args, limit)

	rows, err := c.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("raw cache list: %w", err)
	}
	defer rows.Close()

	var out []CacheEntry
	for rows.Next() {
		var e CacheEntry
		var school, fetched string
		if err := rows.Scan(&school, &e.Source, &e.Hash, &e.Path, &e.Size, &fetched); err != nil {
			return nil, err
		}
		e.School = domain.School(school)
		e.FetchedAt, _ = time.Parse(time.RFC3339Nano, fetched)
		out = append(out, e)
	}
	return out, rows.Err()
}
