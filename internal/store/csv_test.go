package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"econgrads/internal/domain"
)

func sample() domain.CandidateRecord {
	return domain.CandidateRecord{
		Name:             "Jane Smith",
		School:           domain.MIT,
		GraduationYear:   2023,
		ResearchFields:   []string{"Industrial Organization", "Econometrics"},
		InitialPlacement: "Amazon",
		InitialRole:      "Economist",
	}
}

func TestLoadMissingFileIsEmptyStore(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "candidates.csv"))
	require.NoError(t, err)
	assert.Equal(t, 0, s.Len())
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "candidates.csv")

	s := New()
	_, _, err := s.Merge(sample())
	require.NoError(t, err)

	other := sample()
	other.Name = "Bob Jones"
	other.School = domain.Yale
	other.GraduationYear = 0 // no year on the page
	other.ResearchFields = nil
	_, _, err = s.Merge(other)
	require.NoError(t, err)

	require.NoError(t, Save(path, s))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 2, loaded.Len())
	assert.Equal(t, s.Records(), loaded.Records(), "round trip must preserve order and content")
}

func TestSaveLoadSaveIsStable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "candidates.csv")

	s := New()
	_, _, err := s.Merge(sample())
	require.NoError(t, err)
	require.NoError(t, Save(path, s))
	first, err := os.ReadFile(path)
	require.NoError(t, err)

	loaded, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, Save(path, loaded))
	second, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second))
}

func TestSaveRewritesSemicolonInResearchField(t *testing.T) {
	path := filepath.Join(t.TempDir(), "candidates.csv")

	rec := sample()
	// Semicolons can sneak into a single field via manual edits or
	// enrichment; the cell separator must not split the value apart.
	rec.ResearchFields = []string{"Labor; Applied Micro", "IO"}

	s := New()
	_, _, err := s.Merge(rec)
	require.NoError(t, err)
	require.NoError(t, Save(path, s))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 1, loaded.Len())
	assert.Equal(t, []string{"Labor, Applied Micro", "IO"}, loaded.Records()[0].ResearchFields)

	// And the rewritten form is stable from here on.
	require.NoError(t, Save(path, loaded))
	again, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, loaded.Records(), again.Records())
}

func TestLoadRejectsWrongHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "candidates.csv")
	require.NoError(t, os.WriteFile(path, []byte("name,school\nJane,mit\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadRejectsUnknownSchool(t *testing.T) {
	path := filepath.Join(t.TempDir(), "candidates.csv")
	row := "name,school,graduation_year,research_fields,initial_placement,initial_role,current_placement,current_role,linkedin_url\n" +
		"Jane Smith,oxford,2023,,Amazon,,,,\n"
	require.NoError(t, os.WriteFile(path, []byte(row), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestMergeDedupesByKey(t *testing.T) {
	s := New()

	added, updated, err := s.Merge(sample())
	require.NoError(t, err)
	assert.True(t, added)
	assert.False(t, updated)

	// Same person again, now with a current placement.
	in := sample()
	in.CurrentPlacement = "OpenAI"
	added, updated, err = s.Merge(in)
	require.NoError(t, err)
	assert.False(t, added)
	assert.True(t, updated)
	require.Equal(t, 1, s.Len())

	got, ok := s.Get(sample().Key())
	require.True(t, ok)
	assert.Equal(t, "Amazon", got.InitialPlacement)
	assert.Equal(t, "OpenAI", got.CurrentPlacement)
}

func TestMergeRejectsInvalid(t *testing.T) {
	s := New()
	_, _, err := s.Merge(domain.CandidateRecord{School: domain.MIT})
	assert.Error(t, err)
	assert.Equal(t, 0, s.Len())
}

func TestBackup(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "candidates.csv")

	// Missing store file: nothing to back up, not an error.
	require.NoError(t, Backup(path))

	require.NoError(t, os.WriteFile(path, []byte("name\n"), 0o644))
	require.NoError(t, Backup(path))

	entries, err := os.ReadDir(filepath.Join(dir, "backups"))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Contains(t, entries[0].Name(), "candidates_")
}
