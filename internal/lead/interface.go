package lead

import "context"

// UseCase is the lead-capture business surface.
type UseCase interface {
	CreateContact(ctx context.Context, input ContactInput) (ContactOutput, error)
	SearchContacts(ctx context.Context, query ContactQuery) (SearchOutput, error)
	CreateOpportunity(ctx context.Context, input OpportunityInput) (OpportunityOutput, error)
	SearchOpportunities(ctx context.Context, query OpportunityQuery) (SearchOutput, error)
	ScheduleConsultation(ctx context.Context, input ConsultationInput) (ConsultationOutput, error)
}
