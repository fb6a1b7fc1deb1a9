package usecase

import (
	"jewelry-concierge/internal/research"
	pkgLog "jewelry-concierge/pkg/log"
	"jewelry-concierge/pkg/tavily"
)

// formattedMaxLen bounds the plain-text rendering of search results.
const formattedMaxLen = 1500

type implUseCase struct {
	l      pkgLog.Logger
	search tavily.ISearch
}

// New creates the research use case. search may be nil when the
// integration is disabled; operations then return
// research.ErrUnavailable.
func New(l pkgLog.Logger, search tavily.ISearch) research.UseCase {
	return &implUseCase{
		l:      l,
		search: search,
	}
}
