package store

import (
	"fmt"

	"econgrads/internal/domain"
)

// Store is the accumulated candidate table, keyed by the (name, school,
// graduation year) composite. Insertion order is preserved so repeated
// save/load cycles keep a stable row order. Records are never deleted;
// cleanup is a manual, external operation.
type Store struct {
	byKey map[domain.Key]*domain.CandidateRecord
	order []domain.Key
}

func New() *Store {
	return &Store{byKey: make(map[domain.Key]*domain.CandidateRecord)}
}

func (s *Store) Len() int { return len(s.order) }

// Records returns the table in stable order. The slice is a copy; the
// records are values.
func (s *Store) Records() []domain.CandidateRecord {
	out := make([]domain.CandidateRecord, 0, len(s.order))
	for _, k := range s.order {
		out = append(out, *s.byKey[k])
	}
	return out
}

func (s *Store) Get(k domain.Key) (domain.CandidateRecord, bool) {
	r, ok := s.byKey[k]
	if !ok {
		return domain.CandidateRecord{}, false
	}
	return *r, true
}

// School returns the records for one school, in table order.
func (s *Store) School(school domain.School) []domain.CandidateRecord {
	var out []domain.CandidateRecord
	for _, k := range s.order {
		if k.School == school {
			out = append(out, *s.byKey[k])
		}
	}
	return out
}

// Merge folds one observation into the table. New composite keys are
// inserted; existing records get a field-level merge where a populated
// field is never blanked and a differing non-blank value wins. Merging
// the same record twice is a no-op the second time.
func (s *Store) Merge(rec domain.CandidateRecord) (added, updated bool, err error) {
	if err := rec.Validate(); err != nil {
		return false, false, fmt.Errorf("merge: %w", err)
	}

	k := rec.Key()
	if existing, ok := s.byKey[k]; ok {
		return false, existing.Merge(rec), nil
	}

	cp := rec
	s.byKey[k] = &cp
	s.order = append(s.order, k)
	return true, false, nil
}
