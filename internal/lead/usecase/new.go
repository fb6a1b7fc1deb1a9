package usecase

import (
	"jewelry-concierge/internal/lead"
	"jewelry-concierge/pkg/ghl"
	pkgLog "jewelry-concierge/pkg/log"
)

// Config carries optional pipeline routing for new opportunities. When
// empty, the first pipeline and stage reported by the CRM are used.
type Config struct {
	PipelineID string
	StageID    string
}

type implUseCase struct {
	l   pkgLog.Logger
	crm ghl.IGHL
	cfg Config
}

// New creates the lead use case. crm may be nil when the integration is
// disabled; CRM operations then return lead.ErrUnavailable and the
// consultation workflow degrades to a CRM-free acknowledgment.
func New(l pkgLog.Logger, crm ghl.IGHL, cfg Config) lead.UseCase {
	return &implUseCase{
		l:   l,
		crm: crm,
		cfg: cfg,
	}
}
