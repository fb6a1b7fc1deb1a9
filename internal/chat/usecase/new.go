package usecase

import (
	"jewelry-concierge/internal/chat/repository"
	"jewelry-concierge/pkg/llm"
	pkgLog "jewelry-concierge/pkg/log"
)

type implUseCase struct {
	l       pkgLog.Logger
	gateway llm.Client
	repo    repository.SessionRepository
	persona string
}

// New creates a new chat UseCase instance. The persona is the fixed
// system instruction for this deployment, resolved once at startup.
func New(
	l pkgLog.Logger,
	gateway llm.Client,
	repo repository.SessionRepository,
	persona string,
) *implUseCase {
	return &implUseCase{
		l:       l,
		gateway: gateway,
		repo:    repo,
		persona: persona,
	}
}
