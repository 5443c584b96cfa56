package config

import (
	"errors"
	"fmt"
	"strings"

	"econgrads/internal/domain"
)

// Validate checks the loaded config before a run starts. A school with
// no parser registered is caught later by the registry; here we catch
// the inverse, config entries for schools we do not track, plus the
// fetch knobs that would make a run misbehave silently.
func Validate(cfg Config) error {
	var errs []string

	if cfg.Fetch.TimeoutSeconds <= 0 {
		errs = append(errs, "fetch.timeout_seconds must be > 0")
	}
	if cfg.Fetch.RequestsPerSecond <= 0 {
		errs = append(errs, "fetch.requests_per_second must be > 0")
	}
	if cfg.Fetch.Burst <= 0 {
		errs = append(errs, "fetch.burst must be > 0")
	}
	if strings.TrimSpace(cfg.Fetch.UserAgent) == "" {
		errs = append(errs, "fetch.user_agent is required")
	}

	if len(cfg.Schools) == 0 {
		errs = append(errs, "schools: at least one school must be configured")
	}
	for slug, src := range cfg.Schools {
		if _, err := domain.ParseSchool(slug); err != nil {
			errs = append(errs, fmt.Sprintf("schools.%s: not a tracked school", slug))
		}
		if len(src.URLs) == 0 && len(src.Uploads) == 0 {
			errs = append(errs, fmt.Sprintf("schools.%s: needs at least one url or upload", slug))
		}
		for i, u := range src.URLs {
			if !strings.HasPrefix(u, "http://") && !strings.HasPrefix(u, "https://") {
				errs = append(errs, fmt.Sprintf("schools.%s.urls[%d]: %q is not an http(s) url", slug, i, u))
			}
		}
	}

	if cfg.Enrich.Concurrency < 0 {
		errs = append(errs, "enrich.concurrency must be >= 0")
	}

	if len(errs) > 0 {
		return errors.New("config validation failed:\n- " + strings.Join(errs, "\n- "))
	}
	return nil
}

// TrackedSchools returns the configured schools in the canonical
// alphabetical order, which is also the scrape-pass order.
func TrackedSchools(cfg Config) []domain.School {
	var out []domain.School
	for _, s := range domain.Schools {
		if _, ok := cfg.Schools[string(s)]; ok {
			out = append(out, s)
		}
	}
	return out
}
