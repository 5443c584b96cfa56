package domain

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchoolsSortedAndComplete(t *testing.T) {
	assert.Len(t, Schools, 24)
	assert.True(t, sort.SliceIsSorted(Schools, func(i, j int) bool {
		return Schools[i] < Schools[j]
	}), "scrape order is alphabetical by slug")

	for _, s := range Schools {
		assert.True(t, s.Valid(), "school %q", s)
		assert.NotEmpty(t, s.DisplayName(), "school %q has no display name", s)
	}
}

func TestParseSchool(t *testing.T) {
	s, err := ParseSchool("mit")
	require.NoError(t, err)
	assert.Equal(t, MIT, s)

	_, err = ParseSchool("oxford")
	assert.Error(t, err)
}
