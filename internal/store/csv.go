package store

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"econgrads/internal/domain"
)

// Column order is part of the store's contract: downstream consumers
// (enrichment, scoring, charts) read this file and must never need to
// adapt across runs.
var columns = []string{
	"name", "school", "graduation_year", "research_fields",
	"initial_placement", "initial_role", "current_placement",
	"current_role", "linkedin_url",
}

// Research fields are packed into one CSV cell. The semicolon is the
// reserved separator, so any semicolon inside a single field value is
// rewritten to a comma on save; otherwise the value would split into
// two fields on the next load.
const fieldsSep = "; "

// Load reads the candidate store from a CSV file. A missing file is an
// empty store, not an error; anything else wrong with the file is fatal
// for the run.
func Load(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return New(), nil
		}
		return nil, fmt.Errorf("open candidate store: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return New(), nil
		}
		return nil, fmt.Errorf("candidate store header: %w", err)
	}
	if len(header) != len(columns) {
		return nil, fmt.Errorf("candidate store: expected %d columns, found %d", len(columns), len(header))
	}
	for i, c := range columns {
		if header[i] != c {
			return nil, fmt.Errorf("candidate store: column %d is %q, want %q", i, header[i], c)
		}
	}

	s := New()
	for line := 2; ; line++ {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("candidate store line %d: %w", line, err)
		}
		rec, err := recordFromRow(row)
		if err != nil {
			return nil, fmt.Errorf("candidate store line %d: %w", line, err)
		}
		if _, _, err := s.Merge(rec); err != nil {
			return nil, fmt.Errorf("candidate store line %d: %w", line, err)
		}
	}
	return s, nil
}

// Save writes the store atomically. Callers that want a safety copy of
// the previous file call Backup first; the coordinator does that once
// per run, not once per school.
func Save(path string, s *Store) error {
	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("write candidate store: %w", err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(columns); err != nil {
		_ = f.Close()
		return fmt.Errorf("write candidate store header: %w", err)
	}
	for _, rec := range s.Records() {
		if err := w.Write(rowFromRecord(rec)); err != nil {
			_ = f.Close()
			return fmt.Errorf("write candidate store row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		_ = f.Close()
		return fmt.Errorf("flush candidate store: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close candidate store: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replace candidate store: %w", err)
	}
	return nil
}

// Backup copies the current store file into <dir>/backups with a
// timestamp suffix. Missing store file is a no-op.
func Backup(path string) error {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("stat candidate store: %w", err)
	}

	dir := filepath.Join(filepath.Dir(path), "backups")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("backup dir: %w", err)
	}

	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	dst := filepath.Join(dir, fmt.Sprintf("%s_%s.csv", base, time.Now().Format("20060102_150405")))

	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read for backup: %w", err)
	}
	if err := os.WriteFile(dst, b, 0o644); err != nil {
		return fmt.Errorf("write backup: %w", err)
	}
	return nil
}

func rowFromRecord(r domain.CandidateRecord) []string {
	year := ""
	if r.GraduationYear != 0 {
		year = strconv.Itoa(r.GraduationYear)
	}
	fields := make([]string, 0, len(r.ResearchFields))
	for _, f := range r.ResearchFields {
		fields = append(fields, strings.ReplaceAll(f, ";", ","))
	}
	return []string{
		r.Name,
		string(r.School),
		year,
		strings.Join(fields, fieldsSep),
		r.InitialPlacement,
		r.InitialRole,
		r.CurrentPlacement,
		r.CurrentRole,
		r.LinkedInURL,
	}
}

func recordFromRow(row []string) (domain.CandidateRecord, error) {
	if len(row) != len(columns) {
		return domain.CandidateRecord{}, fmt.Errorf("expected %d fields, found %d", len(columns), len(row))
	}

	school, err := domain.ParseSchool(row[1])
	if err != nil {
		return domain.CandidateRecord{}, err
	}

	year := 0
	if row[2] != "" {
		year, err = strconv.Atoi(row[2])
		if err != nil {
			return domain.CandidateRecord{}, fmt.Errorf("graduation_year %q: %w", row[2], err)
		}
	}

	var fields []string
	if row[3] != "" {
		for _, f := range strings.Split(row[3], ";") {
			if f = strings.TrimSpace(f); f != "" {
				fields = append(fields, f)
			}
		}
	}

	return domain.CandidateRecord{
		Name:             row[0],
		School:           school,
		GraduationYear:   year,
		ResearchFields:   fields,
		InitialPlacement: row[4],
		InitialRole:      row[5],
		CurrentPlacement: row[6],
		CurrentRole:      row[7],
		LinkedInURL:      row[8],
	}, nil
}
