package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"econgrads/internal/domain"
)

// State is the persisted scrape bookkeeping: one entry per tracked
// school, surviving process restarts.
type State struct {
	Schools map[domain.School]domain.SchoolState `json:"schools"`
}

func NewState() State {
	return State{Schools: make(map[domain.School]domain.SchoolState)}
}

func (st State) School(s domain.School) domain.SchoolState {
	if e, ok := st.Schools[s]; ok {
		return e
	}
	return domain.SchoolState{School: s}
}

func (st *State) Set(e domain.SchoolState) {
	if st.Schools == nil {
		st.Schools = make(map[domain.School]domain.SchoolState)
	}
	st.Schools[e.School] = e
}

// LoadState reads the scrape-state file. Missing file means first run.
func LoadState(path string) (State, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return NewState(), nil
		}
		return State{}, fmt.Errorf("read scrape state: %w", err)
	}
	var st State
	if err := json.Unmarshal(b, &st); err != nil {
		return State{}, fmt.Errorf("decode scrape state: %w", err)
	}
	if st.Schools == nil {
		st.Schools = make(map[domain.School]domain.SchoolState)
	}
	return st, nil
}

// SaveState writes the scrape-state file atomically.
func SaveState(path string, st State) error {
	b, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return fmt.Errorf("encode scrape state: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return fmt.Errorf("write scrape state: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replace scrape state: %w", err)
	}
	return nil
}
