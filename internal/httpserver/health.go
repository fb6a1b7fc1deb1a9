package httpserver

import (
	"github.com/gin-gonic/gin"

	"jewelry-concierge/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthVersion = "1.0.0"
	ServiceName   = "jewelry-concierge"

	statusHealthy   = "healthy"
	statusDegraded  = "degraded"
	statusUnhealthy = "unhealthy"
)

// healthCheck reports per-component readiness. Missing optional
// integrations degrade the status; a missing model credential or widget
// template makes it unhealthy.
// @Summary Health Check
// @Description Per-component readiness with an aggregate status.
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Component flags and status"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	status := statusHealthy
	switch {
	case !srv.llmConfigured || !srv.widgetReady:
		status = statusUnhealthy
	case !srv.crmEnabled || !srv.searchEnabled:
		status = statusDegraded
	}

	response.OK(c, gin.H{
		"status":  status,
		"version": HealthVersion,
		"service": ServiceName,
		"components": gin.H{
			"llm_configured":  srv.llmConfigured,
			"widget_template": srv.widgetReady,
			"crm":             srv.crmEnabled,
			"search":          srv.searchEnabled,
		},
	})
}

// liveCheck answers as soon as the process serves traffic.
// @Summary Liveness Check
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"version": HealthVersion,
		"service": ServiceName,
	})
}
