package http

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/gin-gonic/gin"

	"jewelry-concierge/pkg/response"
)

const (
	headerDeprecation = "Deprecation"

	noticeRecommend   = "This endpoint is deprecated. Ask the assistant at /chat for recommendations."
	noticeAppointment = "This endpoint is deprecated. Use /consultation/schedule instead."
	noticeInventory   = "This endpoint is deprecated. Use /search with search_type=product instead."
)

// RecommendJewelry godoc
// @Summary     Jewelry recommendations (deprecated)
// @Description Returns a fixed catalog sample. Superseded by the conversational assistant.
// @Tags        Legacy
// @Accept      json
// @Produce     json
// @Param       body body recommendReq true "Occasion and preferences"
// @Success     200 {object} recommendResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /jewelry/recommend [POST]
// @Deprecated
func (h *handler) RecommendJewelry(c *gin.Context) {
	var req recommendReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	c.Header(headerDeprecation, "true")
	response.OK(c, recommendResp{
		Occasion: req.Occasion,
		Recommendations: []recommendationResp{
			{
				ID:          "BR001",
				Name:        "Classic Solitaire Engagement Ring",
				Price:       "$2,500 - $15,000",
				Description: "Timeless elegance with certified diamonds",
				ImageURL:    "/images/solitaire-ring.jpg",
			},
			{
				ID:          "BR002",
				Name:        "Vintage Art Deco Collection",
				Price:       "$1,800 - $8,500",
				Description: "Inspired by 1920s glamour with intricate details",
				ImageURL:    "/images/art-deco-collection.jpg",
			},
		},
		Notice: noticeRecommend,
	})
}

// ScheduleAppointment godoc
// @Summary     Schedule a consultation (deprecated)
// @Description Acknowledges the request without CRM linkage. Superseded by /consultation/schedule.
// @Tags        Legacy
// @Accept      json
// @Produce     json
// @Param       body body appointmentReq true "Appointment request"
// @Success     200 {object} appointmentResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /appointment/schedule [POST]
// @Deprecated
func (h *handler) ScheduleAppointment(c *gin.Context) {
	var req appointmentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	prefix := strings.ToUpper(strings.ReplaceAll(req.CustomerName, " ", ""))
	if len(prefix) > 3 {
		prefix = prefix[:3]
	}

	c.Header(headerDeprecation, "true")
	response.OK(c, appointmentResp{
		AppointmentID: fmt.Sprintf("BRAX-%s-001", prefix),
		Customer:      req.CustomerName,
		Email:         req.Email,
		Phone:         req.Phone,
		Date:          req.PreferredDate,
		Type:          req.ConsultationType,
		Status:        "pending_confirmation",
		Message: "Thank you for scheduling with Brax Fine Jewelers. " +
			"We'll contact you within 24 hours to confirm your appointment.",
		Notice: noticeAppointment,
	})
}

// SearchInventory godoc
// @Summary     Search inventory (deprecated)
// @Description Returns a fixed sample matching the query. Superseded by /search.
// @Tags        Legacy
// @Produce     json
// @Param       query      query string true  "Search query"
// @Param       budget_min query number false "Lower budget bound"
// @Param       budget_max query number false "Upper budget bound"
// @Success     200 {object} inventoryResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /inventory/search [GET]
// @Deprecated
func (h *handler) SearchInventory(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		response.Error(c, errors.New("query is required"))
		return
	}

	budgetMin := c.DefaultQuery("budget_min", "0")
	budgetMax := c.DefaultQuery("budget_max", "No limit")

	c.Header(headerDeprecation, "true")
	response.OK(c, inventoryResp{
		Query:       query,
		BudgetRange: fmt.Sprintf("$%s - $%s", budgetMin, budgetMax),
		Results: []inventoryItemResp{
			{
				ID:          "BR101",
				Name:        fmt.Sprintf("Diamond %s Collection", titleCase(query)),
				PriceRange:  "$1,200 - $12,000",
				Available:   true,
				Description: fmt.Sprintf("Exquisite %s pieces featuring certified diamonds and precious metals", query),
			},
		},
		TotalCount: 1,
		Notice:     noticeInventory,
	})
}

func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
