package usecase

import (
	"context"
	"fmt"
	"strings"

	"jewelry-concierge/internal/lead"
	"jewelry-concierge/pkg/ghl"
)

const (
	statusPendingConfirmation = "pending_confirmation"

	msgConfirmation = "Thank you for scheduling with Brax Fine Jewelers. " +
		"We'll contact you within 24 hours to confirm your appointment."
)

// ScheduleConsultation acknowledges the request and, when a CRM is
// configured, records it there: upsert the contact, attach an
// opportunity, and send a confirmation message. Only the contact upsert
// gates the CRM linkage; later steps are best-effort and their failures
// are logged, not surfaced.
func (uc *implUseCase) ScheduleConsultation(ctx context.Context, input lead.ConsultationInput) (lead.ConsultationOutput, error) {
	out := lead.ConsultationOutput{
		AppointmentID: appointmentID(input.CustomerName),
		Customer:      input.CustomerName,
		Email:         input.Email,
		Phone:         input.Phone,
		Date:          input.PreferredDate,
		Type:          input.ConsultationType,
		Status:        statusPendingConfirmation,
		Message:       msgConfirmation,
	}

	if uc.crm == nil {
		return out, nil
	}

	first, last := splitName(input.CustomerName)
	tags := []string{"consultation-request"}
	if input.ConsultationType != "" {
		tags = append(tags, input.ConsultationType)
	}

	res := uc.crm.UpsertContact(ctx, ghl.Contact{
		FirstName: first,
		LastName:  last,
		Email:     input.Email,
		Phone:     input.Phone,
		Tags:      tags,
	})
	if !res.Success {
		uc.l.Warnf(ctx, "consultation: contact upsert failed, acknowledging without CRM: %s", res.Error)
		return out, nil
	}

	contactID := extractID(res.Data, "contact")
	out.ContactID = contactID
	if contactID == "" {
		uc.l.Warnf(ctx, "consultation: CRM returned no contact id")
		return out, nil
	}

	uc.attachOpportunity(ctx, input, contactID)
	uc.sendConfirmation(ctx, contactID)

	return out, nil
}

func (uc *implUseCase) attachOpportunity(ctx context.Context, input lead.ConsultationInput, contactID string) {
	pipelineID, stageID, err := uc.resolvePipeline(ctx)
	if err != nil {
		uc.l.Warnf(ctx, "consultation: pipeline lookup failed: %v", err)
		return
	}

	name := fmt.Sprintf("Consultation: %s", input.CustomerName)
	if input.ConsultationType != "" {
		name = fmt.Sprintf("%s (%s)", name, input.ConsultationType)
	}

	res := uc.crm.CreateOpportunity(ctx, ghl.Opportunity{
		Name:       name,
		ContactID:  contactID,
		PipelineID: pipelineID,
		StageID:    stageID,
		Status:     "open",
	})
	if !res.Success {
		uc.l.Warnf(ctx, "consultation: opportunity creation failed: %s", res.Error)
	}
}

func (uc *implUseCase) sendConfirmation(ctx context.Context, contactID string) {
	res := uc.crm.SearchConversation(ctx, "", contactID, 1, 0)
	if !res.Success {
		uc.l.Warnf(ctx, "consultation: conversation lookup failed: %s", res.Error)
		return
	}

	conversationID := firstConversation(res.Data)
	if conversationID == "" {
		uc.l.Infof(ctx, "consultation: no conversation for contact %s, skipping confirmation", contactID)
		return
	}

	sent := uc.crm.SendMessage(ctx, ghl.Message{
		ConversationID: conversationID,
		Message:        msgConfirmation,
	})
	if !sent.Success {
		uc.l.Warnf(ctx, "consultation: confirmation send failed: %s", sent.Error)
	}
}

// appointmentID builds the customer-visible reference, e.g.
// "BRAX-JAN-001" for Jane Doe.
func appointmentID(customerName string) string {
	prefix := strings.ToUpper(strings.ReplaceAll(customerName, " ", ""))
	if len(prefix) > 3 {
		prefix = prefix[:3]
	}
	if prefix == "" {
		prefix = "CST"
	}
	return fmt.Sprintf("BRAX-%s-001", prefix)
}

func splitName(full string) (first, last string) {
	parts := strings.Fields(full)
	switch len(parts) {
	case 0:
		return "", ""
	case 1:
		return parts[0], ""
	default:
		return parts[0], strings.Join(parts[1:], " ")
	}
}
