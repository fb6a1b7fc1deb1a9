package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"jewelry-concierge/pkg/response"
)

// Search godoc
// @Summary     Search the web for jewelry information
// @Description Runs the query through the preset matching search_type: general, market, product, price, or trends.
// @Tags        Research
// @Accept      json
// @Produce     json
// @Param       body body searchReq true "Query and optional search type"
// @Success     200 {object} searchResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     429 {object} response.Resp "Rate limited"
// @Failure     503 {object} response.Resp "Search not configured"
// @Router      /search [POST]
func (h *handler) Search(c *gin.Context) {
	ctx := c.Request.Context()

	var req searchReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Search(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Search: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newSearchResp(output))
}

// Trends godoc
// @Summary     Current jewelry trends
// @Description Reports trending styles for a category. Defaults to engagement rings.
// @Tags        Research
// @Produce     json
// @Param       category query string false "Jewelry category"
// @Success     200 {object} searchResp
// @Failure     503 {object} response.Resp "Search not configured"
// @Router      /search/trends [GET]
func (h *handler) Trends(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Trends(ctx, c.Query("category"))
	if err != nil {
		h.l.Errorf(ctx, "uc.Trends: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newSearchResp(output))
}

// Market godoc
// @Summary     Jewelry market search
// @Description Searches industry sources for market and pricing information.
// @Tags        Research
// @Produce     json
// @Param       query query string true "Market query"
// @Success     200 {object} searchResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     503 {object} response.Resp "Search not configured"
// @Router      /search/market [GET]
func (h *handler) Market(c *gin.Context) {
	ctx := c.Request.Context()

	query := c.Query("query")
	if query == "" {
		response.Error(c, errors.New("query is required"))
		return
	}

	output, err := h.uc.Market(ctx, query)
	if err != nil {
		h.l.Errorf(ctx, "uc.Market: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newSearchResp(output))
}
