package ghl

import "context"

// IGHL is the CRM surface consumed by the lead domain. The concrete
// Client implements more tools; use cases depend only on what they call
// so tests can swap in recording stubs.
type IGHL interface {
	TestConnection(ctx context.Context) Result

	UpsertContact(ctx context.Context, contact Contact) Result
	CreateContact(ctx context.Context, contact Contact) Result
	GetContacts(ctx context.Context, query string, limit, offset int) Result
	AddTags(ctx context.Context, contactID string, tags []string) Result

	GetPipelines(ctx context.Context) Result
	CreateOpportunity(ctx context.Context, opp Opportunity) Result
	SearchOpportunity(ctx context.Context, q OpportunityQuery) Result

	SearchConversation(ctx context.Context, query, contactID string, limit, offset int) Result
	SendMessage(ctx context.Context, msg Message) Result
}

var _ IGHL = (*Client)(nil)
