package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps the deprecated first-generation endpoints. They
// stay unthrottled; the payloads are static.
func RegisterRoutes(r *gin.Engine, h Handler) {
	r.POST("/jewelry/recommend", h.RecommendJewelry)
	r.POST("/appointment/schedule", h.ScheduleAppointment)
	r.GET("/inventory/search", h.SearchInventory)
}
