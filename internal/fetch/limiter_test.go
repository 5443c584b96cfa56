package fetch

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHostLimiterFoldsHostVariants(t *testing.T) {
	hl := NewHostLimiter(HostRate{RequestsPerSecond: 10, Burst: 2}, nil)

	base := hl.limiterFor(canonicalHost("econ.duke.edu"))
	assert.Same(t, base, hl.limiterFor(canonicalHost("www.econ.duke.edu")))
	assert.Same(t, base, hl.limiterFor(canonicalHost("Econ.Duke.edu:443")))
	assert.NotSame(t, base, hl.limiterFor(canonicalHost("economics.mit.edu")))
}

func TestHostLimiterOverrides(t *testing.T) {
	hl := NewHostLimiter(
		HostRate{RequestsPerSecond: 1, Burst: 2},
		map[string]HostRate{
			"www.slow.example.edu": {RequestsPerSecond: 0.25},
			"fast.example.edu":     {RequestsPerSecond: 5, Burst: 10},
		},
	)

	// Override keys are canonicalized too, and omitted knobs inherit
	// the defaults.
	slow := hl.rateFor("slow.example.edu")
	assert.Equal(t, 0.25, slow.RequestsPerSecond)
	assert.Equal(t, 2, slow.Burst)

	fast := hl.rateFor("fast.example.edu")
	assert.Equal(t, 5.0, fast.RequestsPerSecond)
	assert.Equal(t, 10, fast.Burst)

	assert.Equal(t, HostRate{RequestsPerSecond: 1, Burst: 2}, hl.rateFor("other.example.edu"))
}

func TestHostLimiterWaitURL(t *testing.T) {
	hl := NewHostLimiter(HostRate{RequestsPerSecond: 100, Burst: 5}, nil)

	require.NoError(t, hl.WaitURL(context.Background(), "https://econ.duke.edu/placements"))
	// Unparseable URLs still go through the fallback bucket.
	require.NoError(t, hl.WaitURL(context.Background(), "::not-a-url"))
}
