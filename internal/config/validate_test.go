package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"econgrads/internal/domain"
)

func validConfig() Config {
	var cfg Config
	cfg.App.DataDir = "."
	cfg.Fetch.TimeoutSeconds = 30
	cfg.Fetch.RequestsPerSecond = 1
	cfg.Fetch.Burst = 2
	cfg.Fetch.UserAgent = "test"
	cfg.Schools = map[string]SchoolSource{
		"mit":  {URLs: []string{"https://economics.mit.edu/job-market"}},
		"duke": {URLs: []string{"https://econ.duke.edu/placements"}},
	}
	return cfg
}

func TestValidateAcceptsGoodConfig(t *testing.T) {
	assert.NoError(t, Validate(validConfig()))
}

func TestValidateRejectsBadConfigs(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"zero timeout", func(c *Config) { c.Fetch.TimeoutSeconds = 0 }, "timeout_seconds"},
		{"no user agent", func(c *Config) { c.Fetch.UserAgent = " " }, "user_agent"},
		{"no schools", func(c *Config) { c.Schools = nil }, "at least one school"},
		{"untracked school", func(c *Config) {
			c.Schools["oxford"] = SchoolSource{URLs: []string{"https://x.edu"}}
		}, "not a tracked school"},
		{"school without sources", func(c *Config) {
			c.Schools["mit"] = SchoolSource{}
		}, "at least one url or upload"},
		{"non-http url", func(c *Config) {
			c.Schools["mit"] = SchoolSource{URLs: []string{"ftp://econ.mit.edu"}}
		}, "not an http(s) url"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := Validate(cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestTrackedSchoolsOrder(t *testing.T) {
	cfg := validConfig()
	got := TrackedSchools(cfg)
	assert.Equal(t, []domain.School{domain.Duke, domain.MIT}, got, "canonical alphabetical order, not map order")
}

func TestValidateUploadsOnlySchool(t *testing.T) {
	cfg := validConfig()
	cfg.Schools["mit"] = SchoolSource{Uploads: []string{"placements.pdf"}}
	assert.NoError(t, Validate(cfg))
}
