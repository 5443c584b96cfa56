package fetch

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"econgrads/internal/config"
	"econgrads/internal/domain"
)

func testConfig() config.Config {
	var cfg config.Config
	cfg.Fetch.TimeoutSeconds = 5
	cfg.Fetch.RequestsPerSecond = 1000 // don't throttle tests
	cfg.Fetch.Burst = 1000
	cfg.Fetch.UserAgent = "econgrads-test"
	return cfg
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestFetchSchoolFirstRunIsChanged(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "econgrads-test", r.Header.Get("User-Agent"))
		w.Write([]byte("<html>placements</html>"))
	}))
	defer srv.Close()

	f := New(testConfig(), nil, testLogger())
	res, err := f.FetchSchool(context.Background(), domain.Duke,
		config.SchoolSource{URLs: []string{srv.URL}}, domain.SchoolState{School: domain.Duke}, false)
	require.NoError(t, err)

	assert.True(t, res.Changed, "no previous hashes means changed")
	require.Len(t, res.Documents, 1)
	assert.False(t, res.Documents[0].PDF)
	assert.Equal(t, res.Documents[0].Hash, res.Hashes[srv.URL])
	assert.Len(t, res.Documents[0].Hash, 64)
}

func TestFetchSchoolUnchangedWhenHashesMatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>stable content</html>"))
	}))
	defer srv.Close()

	f := New(testConfig(), nil, testLogger())
	src := config.SchoolSource{URLs: []string{srv.URL}}

	first, err := f.FetchSchool(context.Background(), domain.Duke, src, domain.SchoolState{School: domain.Duke}, false)
	require.NoError(t, err)

	prev := domain.SchoolState{School: domain.Duke, SourceHashes: first.Hashes}
	second, err := f.FetchSchool(context.Background(), domain.Duke, src, prev, false)
	require.NoError(t, err)
	assert.False(t, second.Changed)

	forced, err := f.FetchSchool(context.Background(), domain.Duke, src, prev, true)
	require.NoError(t, err)
	assert.True(t, forced.Changed, "force overrides hash comparison")
}

func TestFetchSchoolChangedWhenContentDiffers(t *testing.T) {
	body := "<html>v1</html>"
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body))
	}))
	defer srv.Close()

	f := New(testConfig(), nil, testLogger())
	src := config.SchoolSource{URLs: []string{srv.URL}}

	first, err := f.FetchSchool(context.Background(), domain.Duke, src, domain.SchoolState{School: domain.Duke}, false)
	require.NoError(t, err)

	body = "<html>v2</html>"
	prev := domain.SchoolState{School: domain.Duke, SourceHashes: first.Hashes}
	second, err := f.FetchSchool(context.Background(), domain.Duke, src, prev, false)
	require.NoError(t, err)
	assert.True(t, second.Changed)
}

func TestFetchSchoolErrorStatusFailsWholeSchool(t *testing.T) {
	good := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("fine"))
	}))
	defer good.Close()
	bad := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer bad.Close()

	f := New(testConfig(), nil, testLogger())
	_, err := f.FetchSchool(context.Background(), domain.Duke,
		config.SchoolSource{URLs: []string{good.URL, bad.URL}}, domain.SchoolState{School: domain.Duke}, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}

func TestFetchSchoolDetectsPDF(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/pdf")
		w.Write([]byte("%PDF-1.4 whatever"))
	}))
	defer srv.Close()

	f := New(testConfig(), nil, testLogger())
	res, err := f.FetchSchool(context.Background(), domain.MIT,
		config.SchoolSource{URLs: []string{srv.URL}}, domain.SchoolState{School: domain.MIT}, false)
	require.NoError(t, err)
	require.Len(t, res.Documents, 1)
	assert.True(t, res.Documents[0].PDF)
}

func TestFetchSchoolReadsUploads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "placements.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4 local"), 0o644))

	f := New(testConfig(), nil, testLogger())
	res, err := f.FetchSchool(context.Background(), domain.MIT,
		config.SchoolSource{Uploads: []string{path}}, domain.SchoolState{School: domain.MIT}, false)
	require.NoError(t, err)
	require.Len(t, res.Documents, 1)
	assert.True(t, res.Documents[0].PDF)
	assert.Contains(t, res.Hashes, path)

	_, err = f.FetchSchool(context.Background(), domain.MIT,
		config.SchoolSource{Uploads: []string{filepath.Join(t.TempDir(), "missing.pdf")}},
		domain.SchoolState{School: domain.MIT}, false)
	assert.Error(t, err)
}

func TestHashesChanged(t *testing.T) {
	cur := map[string]string{"a": "1", "b": "2"}
	assert.True(t, hashesChanged(cur, nil), "no previous state")
	assert.False(t, hashesChanged(cur, map[string]string{"a": "1", "b": "2"}))
	assert.True(t, hashesChanged(cur, map[string]string{"a": "1", "b": "old"}))
	assert.True(t, hashesChanged(cur, map[string]string{"a": "1"}), "new source counts as change")
	assert.True(t, hashesChanged(map[string]string{"a": "1"}, cur), "removed source counts as change")
}
