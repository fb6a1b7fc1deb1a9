package http

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"jewelry-concierge/internal/lead"
)

func (h *handler) processContactReq(c *gin.Context) (contactReq, error) {
	var req contactReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processOpportunityReq(c *gin.Context) (opportunityReq, error) {
	var req opportunityReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processConsultationReq(c *gin.Context) (consultationReq, error) {
	var req consultationReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processContactQuery reads contact search filters from the query
// string.
func (h *handler) processContactQuery(c *gin.Context) lead.ContactQuery {
	return lead.ContactQuery{
		Query:  c.Query("query"),
		Limit:  queryInt(c, "limit"),
		Offset: queryInt(c, "offset"),
	}
}

// processOpportunityQuery reads opportunity search filters from the
// query string.
func (h *handler) processOpportunityQuery(c *gin.Context) lead.OpportunityQuery {
	return lead.OpportunityQuery{
		PipelineID: c.Query("pipeline_id"),
		StageID:    c.Query("stage_id"),
		ContactID:  c.Query("contact_id"),
		Query:      c.Query("query"),
		Limit:      queryInt(c, "limit"),
		Offset:     queryInt(c, "offset"),
	}
}

func queryInt(c *gin.Context, key string) int {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return 0
	}
	return v
}
