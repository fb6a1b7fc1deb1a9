package http

import (
	"github.com/gin-gonic/gin"

	"jewelry-concierge/internal/middleware"
)

// RegisterRoutes maps the CRM and consultation endpoints under a shared
// lead rate limit.
func RegisterRoutes(r *gin.Engine, h Handler, mw middleware.Middleware) {
	limit := mw.RateLimit(middleware.ScopeLead)

	crm := r.Group("/crm", limit)
	{
		crm.POST("/contacts", h.CreateContact)
		crm.GET("/contacts", h.SearchContacts)
		crm.POST("/opportunities", h.CreateOpportunity)
		crm.GET("/opportunities", h.SearchOpportunities)
	}

	r.POST("/consultation/schedule", limit, h.ScheduleConsultation)
}
