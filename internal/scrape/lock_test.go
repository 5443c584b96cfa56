package scrape

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAcquireLockRefusesSecondHolder(t *testing.T) {
	dir := t.TempDir()

	first, err := acquireLock(dir)
	require.NoError(t, err)

	_, err = acquireLock(dir)
	assert.Error(t, err, "a held lock must refuse a second pass")

	require.NoError(t, first.Unlock())
	second, err := acquireLock(dir)
	require.NoError(t, err, "released lock can be re-acquired")
	require.NoError(t, second.Unlock())
}
