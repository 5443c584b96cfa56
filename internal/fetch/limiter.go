package fetch

import (
	"context"
	"net/url"
	"strings"
	"sync"

	"golang.org/x/time/rate"
)

// HostRate is a rate budget for one host: either the global default or
// a per-host override from config. Zero values fall back to the
// defaults, so an override can tune just one knob.
type HostRate struct {
	RequestsPerSecond float64
	Burst             int
}

// HostLimiter rate-limits per hostname so a pass over many pages of the
// same department site stays polite. Hosts are folded to lowercase with
// any "www." prefix and port stripped, so www.econ.x.edu and
// econ.x.edu:443 share one budget.
type HostLimiter struct {
	mu        sync.Mutex
	m         map[string]*rate.Limiter
	def       HostRate
	overrides map[string]HostRate
}

func NewHostLimiter(def HostRate, overrides map[string]HostRate) *HostLimiter {
	hl := &HostLimiter{
		m:         make(map[string]*rate.Limiter),
		def:       def,
		overrides: make(map[string]HostRate, len(overrides)),
	}
	for h, r := range overrides {
		hl.overrides[canonicalHost(h)] = r
	}
	return hl
}

func canonicalHost(host string) string {
	host = strings.ToLower(host)
	if i := strings.LastIndex(host, ":"); i >= 0 {
		host = host[:i]
	}
	return strings.TrimPrefix(host, "www.")
}

func (hl *HostLimiter) rateFor(host string) HostRate {
	r, ok := hl.overrides[host]
	if !ok {
		return hl.def
	}
	if r.RequestsPerSecond <= 0 {
		r.RequestsPerSecond = hl.def.RequestsPerSecond
	}
	if r.Burst <= 0 {
		r.Burst = hl.def.Burst
	}
	return r
}

func (hl *HostLimiter) limiterFor(host string) *rate.Limiter {
	hl.mu.Lock()
	defer hl.mu.Unlock()

	if lim, ok := hl.m[host]; ok {
		return lim
	}
	r := hl.rateFor(host)
	lim := rate.NewLimiter(rate.Limit(r.RequestsPerSecond), r.Burst)
	hl.m[host] = lim
	return lim
}

func (hl *HostLimiter) WaitURL(ctx context.Context, raw string) error {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return hl.limiterFor("_").Wait(ctx)
	}
	return hl.limiterFor(canonicalHost(u.Host)).Wait(ctx)
}
