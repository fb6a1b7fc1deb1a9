package http

import (
	"github.com/gin-gonic/gin"

	"jewelry-concierge/pkg/response"
)

// CreateContact godoc
// @Summary     Create or update a CRM contact
// @Description Upserts a contact by email in the connected CRM.
// @Tags        CRM
// @Accept      json
// @Produce     json
// @Param       body body contactReq true "Contact fields"
// @Success     200 {object} contactResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     503 {object} response.Resp "CRM not configured"
// @Router      /crm/contacts [POST]
func (h *handler) CreateContact(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processContactReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.CreateContact(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.CreateContact: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newContactResp(output))
}

// SearchContacts godoc
// @Summary     Search CRM contacts
// @Tags        CRM
// @Produce     json
// @Param       query  query string false "Free-text filter"
// @Param       limit  query int    false "Page size"
// @Param       offset query int    false "Page offset"
// @Success     200 {object} response.Resp
// @Failure     503 {object} response.Resp "CRM not configured"
// @Router      /crm/contacts [GET]
func (h *handler) SearchContacts(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.SearchContacts(ctx, h.processContactQuery(c))
	if err != nil {
		h.l.Errorf(ctx, "uc.SearchContacts: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, output.Data)
}

// CreateOpportunity godoc
// @Summary     Create a CRM opportunity
// @Description Creates an opportunity for an existing contact. When no pipeline is given, the configured or first available pipeline is used.
// @Tags        CRM
// @Accept      json
// @Produce     json
// @Param       body body opportunityReq true "Opportunity fields"
// @Success     200 {object} opportunityResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     503 {object} response.Resp "CRM not configured"
// @Router      /crm/opportunities [POST]
func (h *handler) CreateOpportunity(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processOpportunityReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.CreateOpportunity(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.CreateOpportunity: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newOpportunityResp(output))
}

// SearchOpportunities godoc
// @Summary     Search CRM opportunities
// @Tags        CRM
// @Produce     json
// @Param       pipeline_id query string false "Pipeline filter"
// @Param       stage_id    query string false "Stage filter"
// @Param       contact_id  query string false "Contact filter"
// @Param       query       query string false "Free-text filter"
// @Param       limit       query int    false "Page size"
// @Param       offset      query int    false "Page offset"
// @Success     200 {object} response.Resp
// @Failure     503 {object} response.Resp "CRM not configured"
// @Router      /crm/opportunities [GET]
func (h *handler) SearchOpportunities(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.SearchOpportunities(ctx, h.processOpportunityQuery(c))
	if err != nil {
		h.l.Errorf(ctx, "uc.SearchOpportunities: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, output.Data)
}

// ScheduleConsultation godoc
// @Summary     Request an in-store consultation
// @Description Acknowledges the request and records it in the CRM when one is connected. The acknowledgment succeeds even when the CRM is unreachable.
// @Tags        CRM
// @Accept      json
// @Produce     json
// @Param       body body consultationReq true "Consultation request"
// @Success     200 {object} consultationResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /consultation/schedule [POST]
func (h *handler) ScheduleConsultation(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processConsultationReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.ScheduleConsultation(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ScheduleConsultation: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newConsultationResp(output))
}
