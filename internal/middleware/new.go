package middleware

import (
	pkgLog "jewelry-concierge/pkg/log"
)

// Rate-limit scopes; each carries its own per-address budget.
const (
	ScopeChat   = "chat"
	ScopeClear  = "clear"
	ScopeSearch = "search"
	ScopeLead   = "lead"
)

// Config holds per-scope request budgets (requests per minute per
// client address).
type Config struct {
	ChatPerMin   int
	ClearPerMin  int
	SearchPerMin int
	LeadPerMin   int
}

type Middleware struct {
	l        pkgLog.Logger
	limiters map[string]*rateLimiter
}

// New creates the middleware bundle with one limiter table per scope.
func New(l pkgLog.Logger, cfg Config) Middleware {
	return Middleware{
		l: l,
		limiters: map[string]*rateLimiter{
			ScopeChat:   newRateLimiter(orDefault(cfg.ChatPerMin, 20)),
			ScopeClear:  newRateLimiter(orDefault(cfg.ClearPerMin, 10)),
			ScopeSearch: newRateLimiter(orDefault(cfg.SearchPerMin, 30)),
			ScopeLead:   newRateLimiter(orDefault(cfg.LeadPerMin, 30)),
		},
	}
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}
