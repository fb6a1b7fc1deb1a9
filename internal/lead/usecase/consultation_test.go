package usecase

import (
	"context"
	"testing"

	"jewelry-concierge/internal/lead"
	"jewelry-concierge/pkg/ghl"
)

func consultationInput() lead.ConsultationInput {
	return lead.ConsultationInput{
		CustomerName:     "Jane Doe",
		Email:            "jane@example.com",
		Phone:            "+19495551234",
		PreferredDate:    "2026-09-15",
		ConsultationType: "custom_design",
	}
}

func pipelinesPayload() *ghl.Result {
	return &ghl.Result{Success: true, Data: map[string]any{
		"pipelines": []any{
			map[string]any{
				"id": "pipe-1",
				"stages": []any{
					map[string]any{"id": "stage-1"},
					map[string]any{"id": "stage-2"},
				},
			},
		},
	}}
}

func TestScheduleConsultation(t *testing.T) {
	ctx := context.Background()

	t.Run("Full Workflow", func(t *testing.T) {
		crm := &stubCRM{
			upsertResult:       &ghl.Result{Success: true, Data: map[string]any{"contact": map[string]any{"id": "ct-1"}}},
			pipelinesResult:    pipelinesPayload(),
			conversationResult: &ghl.Result{Success: true, Data: map[string]any{"conversations": []any{map[string]any{"id": "cv-1"}}}},
		}
		uc := New(mockLogger{}, crm, Config{})

		out, err := uc.ScheduleConsultation(ctx, consultationInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if out.AppointmentID != "BRAX-JAN-001" {
			t.Errorf("unexpected appointment id: %s", out.AppointmentID)
		}
		if out.Status != "pending_confirmation" {
			t.Errorf("unexpected status: %s", out.Status)
		}
		if out.ContactID != "ct-1" {
			t.Errorf("expected contact id ct-1, got %q", out.ContactID)
		}

		if len(crm.upsertedContacts) != 1 {
			t.Fatalf("expected 1 upsert, got %d", len(crm.upsertedContacts))
		}
		contact := crm.upsertedContacts[0]
		if contact.FirstName != "Jane" || contact.LastName != "Doe" {
			t.Errorf("name split wrong: %+v", contact)
		}
		if len(contact.Tags) != 2 || contact.Tags[0] != "consultation-request" || contact.Tags[1] != "custom_design" {
			t.Errorf("unexpected tags: %v", contact.Tags)
		}

		if len(crm.createdOpps) != 1 {
			t.Fatalf("expected 1 opportunity, got %d", len(crm.createdOpps))
		}
		opp := crm.createdOpps[0]
		if opp.ContactID != "ct-1" || opp.PipelineID != "pipe-1" || opp.StageID != "stage-1" {
			t.Errorf("unexpected opportunity routing: %+v", opp)
		}

		if len(crm.sentMessages) != 1 || crm.sentMessages[0].ConversationID != "cv-1" {
			t.Errorf("expected confirmation on cv-1, got %+v", crm.sentMessages)
		}
	})

	t.Run("Upsert Failure Falls Back To Acknowledgment", func(t *testing.T) {
		crm := &stubCRM{
			upsertResult: &ghl.Result{Success: false, Error: "CRM down"},
		}
		uc := New(mockLogger{}, crm, Config{})

		out, err := uc.ScheduleConsultation(ctx, consultationInput())
		if err != nil {
			t.Fatalf("acknowledgment must not fail: %v", err)
		}
		if out.ContactID != "" {
			t.Errorf("contact id must be empty on fallback, got %q", out.ContactID)
		}
		if out.AppointmentID == "" || out.Status != "pending_confirmation" {
			t.Errorf("fallback must keep the acknowledgment shape: %+v", out)
		}
		if len(crm.createdOpps) != 0 || len(crm.sentMessages) != 0 {
			t.Errorf("no further CRM calls expected after upsert failure")
		}
	})

	t.Run("Opportunity Failure Is Swallowed", func(t *testing.T) {
		crm := &stubCRM{
			upsertResult:      &ghl.Result{Success: true, Data: map[string]any{"id": "ct-2"}},
			pipelinesResult:   pipelinesPayload(),
			opportunityResult: &ghl.Result{Success: false, Error: "stage archived"},
		}
		uc := New(mockLogger{}, crm, Config{})

		out, err := uc.ScheduleConsultation(ctx, consultationInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.ContactID != "ct-2" {
			t.Errorf("contact linkage must survive opportunity failure")
		}
	})

	t.Run("Configured Pipeline Skips Lookup", func(t *testing.T) {
		crm := &stubCRM{
			upsertResult: &ghl.Result{Success: true, Data: map[string]any{"id": "ct-3"}},
		}
		uc := New(mockLogger{}, crm, Config{PipelineID: "pipe-x", StageID: "stage-x"})

		if _, err := uc.ScheduleConsultation(ctx, consultationInput()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, call := range crm.calls {
			if call == "get_pipelines" {
				t.Errorf("pipeline lookup must be skipped when configured")
			}
		}
		if len(crm.createdOpps) != 1 || crm.createdOpps[0].PipelineID != "pipe-x" {
			t.Errorf("configured pipeline not used: %+v", crm.createdOpps)
		}
	})

	t.Run("No CRM Still Acknowledges", func(t *testing.T) {
		uc := New(mockLogger{}, nil, Config{})

		out, err := uc.ScheduleConsultation(ctx, consultationInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.ContactID != "" || out.AppointmentID == "" {
			t.Errorf("expected plain acknowledgment, got %+v", out)
		}
	})

	t.Run("No Conversation Skips Confirmation", func(t *testing.T) {
		crm := &stubCRM{
			upsertResult:       &ghl.Result{Success: true, Data: map[string]any{"id": "ct-4"}},
			pipelinesResult:    pipelinesPayload(),
			conversationResult: &ghl.Result{Success: true, Data: map[string]any{"conversations": []any{}}},
		}
		uc := New(mockLogger{}, crm, Config{})

		if _, err := uc.ScheduleConsultation(ctx, consultationInput()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(crm.sentMessages) != 0 {
			t.Errorf("no message expected without a conversation")
		}
	})
}

func TestAppointmentID(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"Jane Doe", "BRAX-JAN-001"},
		{"Al", "BRAX-AL-001"},
		{"", "BRAX-CST-001"},
	}
	for _, tc := range cases {
		if got := appointmentID(tc.name); got != tc.want {
			t.Errorf("appointmentID(%q) = %q, want %q", tc.name, got, tc.want)
		}
	}
}
