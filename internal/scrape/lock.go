package scrape

import (
	"fmt"
	"path/filepath"

	"github.com/gofrs/flock"
)

// acquireLock serializes scrape passes against one data directory. The
// store and state files are exclusively owned by a single run;
// concurrent passes are refused, not queued.
func acquireLock(dataDir string) (*flock.Flock, error) {
	l := flock.New(filepath.Join(dataDir, "scrape.lock"))
	ok, err := l.TryLock()
	if err != nil {
		return nil, fmt.Errorf("scrape lock: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("scrape lock: another pass is already running against %s", dataDir)
	}
	return l, nil
}
