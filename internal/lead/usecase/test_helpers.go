package usecase

import (
	"context"

	"jewelry-concierge/pkg/ghl"
)

type mockLogger struct{}

func (mockLogger) Debug(ctx context.Context, arg ...any)                   {}
func (mockLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (mockLogger) Info(ctx context.Context, arg ...any)                    {}
func (mockLogger) Infof(ctx context.Context, template string, arg ...any)  {}
func (mockLogger) Warn(ctx context.Context, arg ...any)                    {}
func (mockLogger) Warnf(ctx context.Context, template string, arg ...any)  {}
func (mockLogger) Error(ctx context.Context, arg ...any)                   {}
func (mockLogger) Errorf(ctx context.Context, template string, arg ...any) {}
func (mockLogger) Fatal(ctx context.Context, arg ...any)                   {}
func (mockLogger) Fatalf(ctx context.Context, template string, arg ...any) {}

// stubCRM records every tool invocation and serves canned results per
// tool. Unconfigured tools succeed with an empty payload.
type stubCRM struct {
	upsertResult       *ghl.Result
	pipelinesResult    *ghl.Result
	opportunityResult  *ghl.Result
	conversationResult *ghl.Result
	sendResult         *ghl.Result
	contactsResult     *ghl.Result
	searchOppResult    *ghl.Result

	upsertedContacts []ghl.Contact
	createdOpps      []ghl.Opportunity
	sentMessages     []ghl.Message
	calls            []string
}

func okResult() ghl.Result {
	return ghl.Result{Success: true, Data: map[string]any{}}
}

func resultOr(r *ghl.Result) ghl.Result {
	if r != nil {
		return *r
	}
	return okResult()
}

func (s *stubCRM) TestConnection(ctx context.Context) ghl.Result {
	s.calls = append(s.calls, "test_connection")
	return okResult()
}

func (s *stubCRM) UpsertContact(ctx context.Context, contact ghl.Contact) ghl.Result {
	s.calls = append(s.calls, "upsert_contact")
	s.upsertedContacts = append(s.upsertedContacts, contact)
	return resultOr(s.upsertResult)
}

func (s *stubCRM) CreateContact(ctx context.Context, contact ghl.Contact) ghl.Result {
	s.calls = append(s.calls, "create_contact")
	return resultOr(s.upsertResult)
}

func (s *stubCRM) GetContacts(ctx context.Context, query string, limit, offset int) ghl.Result {
	s.calls = append(s.calls, "get_contacts")
	return resultOr(s.contactsResult)
}

func (s *stubCRM) AddTags(ctx context.Context, contactID string, tags []string) ghl.Result {
	s.calls = append(s.calls, "add_tags")
	return okResult()
}

func (s *stubCRM) GetPipelines(ctx context.Context) ghl.Result {
	s.calls = append(s.calls, "get_pipelines")
	return resultOr(s.pipelinesResult)
}

func (s *stubCRM) CreateOpportunity(ctx context.Context, opp ghl.Opportunity) ghl.Result {
	s.calls = append(s.calls, "create_opportunity")
	s.createdOpps = append(s.createdOpps, opp)
	return resultOr(s.opportunityResult)
}

func (s *stubCRM) SearchOpportunity(ctx context.Context, q ghl.OpportunityQuery) ghl.Result {
	s.calls = append(s.calls, "search_opportunity")
	return resultOr(s.searchOppResult)
}

func (s *stubCRM) SearchConversation(ctx context.Context, query, contactID string, limit, offset int) ghl.Result {
	s.calls = append(s.calls, "search_conversation")
	return resultOr(s.conversationResult)
}

func (s *stubCRM) SendMessage(ctx context.Context, msg ghl.Message) ghl.Result {
	s.calls = append(s.calls, "send_message")
	s.sentMessages = append(s.sentMessages, msg)
	return resultOr(s.sendResult)
}
