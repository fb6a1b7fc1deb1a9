package http

import (
	"jewelry-concierge/internal/lead"
)

// --- Request DTOs ---

type contactReq struct {
	FirstName string   `json:"first_name"`
	LastName  string   `json:"last_name"`
	Email     string   `json:"email" binding:"required,email"`
	Phone     string   `json:"phone"`
	Tags      []string `json:"tags"`
}

func (r contactReq) toInput() lead.ContactInput {
	return lead.ContactInput{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Phone:     r.Phone,
		Tags:      r.Tags,
	}
}

type opportunityReq struct {
	Name          string  `json:"name" binding:"required"`
	ContactID     string  `json:"contact_id" binding:"required"`
	PipelineID    string  `json:"pipeline_id"`
	StageID       string  `json:"stage_id"`
	MonetaryValue float64 `json:"monetary_value"`
}

func (r opportunityReq) toInput() lead.OpportunityInput {
	return lead.OpportunityInput{
		Name:          r.Name,
		ContactID:     r.ContactID,
		PipelineID:    r.PipelineID,
		StageID:       r.StageID,
		MonetaryValue: r.MonetaryValue,
	}
}

type consultationReq struct {
	CustomerName     string `json:"customer_name" binding:"required"`
	Email            string `json:"email" binding:"required,email"`
	Phone            string `json:"phone" binding:"required"`
	PreferredDate    string `json:"preferred_date" binding:"required"`
	ConsultationType string `json:"consultation_type" binding:"required,oneof=custom_design appraisal selection"`
	Message          string `json:"message"`
}

func (r consultationReq) toInput() lead.ConsultationInput {
	return lead.ConsultationInput{
		CustomerName:     r.CustomerName,
		Email:            r.Email,
		Phone:            r.Phone,
		PreferredDate:    r.PreferredDate,
		ConsultationType: r.ConsultationType,
		Message:          r.Message,
	}
}

// --- Response DTOs ---

type contactResp struct {
	ContactID string         `json:"contact_id,omitempty"`
	Contact   map[string]any `json:"contact,omitempty"`
}

func newContactResp(out lead.ContactOutput) contactResp {
	return contactResp{
		ContactID: out.ContactID,
		Contact:   out.Data,
	}
}

type opportunityResp struct {
	OpportunityID string         `json:"opportunity_id,omitempty"`
	Opportunity   map[string]any `json:"opportunity,omitempty"`
}

func newOpportunityResp(out lead.OpportunityOutput) opportunityResp {
	return opportunityResp{
		OpportunityID: out.OpportunityID,
		Opportunity:   out.Data,
	}
}

type consultationResp struct {
	AppointmentID string `json:"appointment_id"`
	Customer      string `json:"customer"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Date          string `json:"date"`
	Type          string `json:"type"`
	Status        string `json:"status"`
	Message       string `json:"message"`
	ContactID     string `json:"contact_id,omitempty"`
}

func newConsultationResp(out lead.ConsultationOutput) consultationResp {
	return consultationResp{
		AppointmentID: out.AppointmentID,
		Customer:      out.Customer,
		Email:         out.Email,
		Phone:         out.Phone,
		Date:          out.Date,
		Type:          out.Type,
		Status:        out.Status,
		Message:       out.Message,
		ContactID:     out.ContactID,
	}
}
