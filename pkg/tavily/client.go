package tavily

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	pkgLog "jewelry-concierge/pkg/log"
)

const (
	DefaultBaseURL = "https://api.tavily.com"

	requestTimeout = 30 * time.Second
	userAgent      = "jewelry-concierge/1.0"
)

// marketDomains is the allow-list of industry sources for market queries.
var marketDomains = []string{
	"gia.edu",
	"diamonds.pro",
	"nationaljeweler.com",
	"jewelryconnoisseur.com",
	"rapaport.com",
	"jckonline.com",
}

// priceExcludeDomains filters low-trust marketplaces out of price queries.
var priceExcludeDomains = []string{
	"alibaba.com",
	"aliexpress.com",
	"wish.com",
	"ebay.com",
}

// Client is the Tavily web-search client.
type Client struct {
	rest *resty.Client
	l    pkgLog.Logger
}

// New creates the search client. The API key is required.
func New(l pkgLog.Logger, apiKey, baseURL string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("tavily: API key is required")
	}
	if !strings.HasPrefix(apiKey, "tvly-") {
		l.Warnf(context.Background(), "tavily: API key format appears invalid")
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	rest := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(requestTimeout).
		SetHeader("Authorization", "Bearer "+apiKey).
		SetHeader("Content-Type", "application/json").
		SetHeader("User-Agent", userAgent)

	return &Client{rest: rest, l: l}, nil
}

// Search performs one search call. Failures populate the Error field and
// set Success=false instead of returning a Go error.
func (c *Client) Search(ctx context.Context, req Request) Response {
	if req.SearchDepth == "" {
		req.SearchDepth = DepthBasic
	}
	if req.MaxResults <= 0 {
		req.MaxResults = 5
	}

	c.l.Infof(ctx, "tavily: searching for %q", req.Query)
	start := time.Now()

	var reply searchReply
	resp, err := c.rest.R().
		SetContext(ctx).
		SetBody(searchPayload{
			Query:          req.Query,
			SearchDepth:    req.SearchDepth,
			IncludeAnswer:  req.IncludeAnswer,
			MaxResults:     req.MaxResults,
			IncludeDomains: req.IncludeDomains,
			ExcludeDomains: req.ExcludeDomains,
		}).
		SetResult(&reply).
		Post("/search")

	elapsed := time.Since(start).Seconds()

	if err != nil {
		c.l.Errorf(ctx, "tavily: search failed for %q: %v", req.Query, err)
		return Response{Success: false, Query: req.Query, Error: fmt.Sprintf("search failed: %v", err)}
	}
	if resp.IsError() {
		c.l.Errorf(ctx, "tavily: HTTP error %d for %q", resp.StatusCode(), req.Query)
		return Response{Success: false, Query: req.Query, Error: fmt.Sprintf("HTTP error %d", resp.StatusCode())}
	}

	results := make([]Result, len(reply.Results))
	for i, r := range reply.Results {
		results[i] = Result{
			Title:         r.Title,
			URL:           r.URL,
			Content:       r.Content,
			Score:         r.Score,
			PublishedDate: r.PublishedDate,
		}
	}

	c.l.Infof(ctx, "tavily: %d results for %q in %.2fs", len(results), req.Query, elapsed)

	return Response{
		Success:           true,
		Query:             req.Query,
		Results:           results,
		Answer:            reply.Answer,
		FollowUpQuestions: reply.FollowUpQuestions,
		SearchTime:        elapsed,
	}
}

// MarketSearch rewrites the query for jewelry-market context and restricts
// results to industry domains.
func (c *Client) MarketSearch(ctx context.Context, query string) Response {
	return c.Search(ctx, Request{
		Query:          fmt.Sprintf("jewelry market %s trends pricing", query),
		SearchDepth:    DepthAdvanced,
		IncludeAnswer:  true,
		MaxResults:     8,
		IncludeDomains: marketDomains,
	})
}

// ProductResearch searches product specifications and quality information.
func (c *Client) ProductResearch(ctx context.Context, productType, specifications string) Response {
	query := strings.TrimSpace(fmt.Sprintf("%s jewelry %s specifications features quality", productType, specifications))
	return c.Search(ctx, Request{
		Query:         query,
		SearchDepth:   DepthAdvanced,
		IncludeAnswer: true,
		MaxResults:    6,
	})
}

// PriceComparison searches pricing information, excluding low-trust
// marketplaces.
func (c *Client) PriceComparison(ctx context.Context, item, budgetRange string) Response {
	query := strings.TrimSpace(fmt.Sprintf("%s jewelry price %s cost comparison market value", item, budgetRange))
	return c.Search(ctx, Request{
		Query:          query,
		SearchDepth:    DepthBasic,
		IncludeAnswer:  true,
		MaxResults:     5,
		ExcludeDomains: priceExcludeDomains,
	})
}

// TrendAnalysis searches current style trends for a jewelry category.
func (c *Client) TrendAnalysis(ctx context.Context, category string) Response {
	if category == "" {
		category = "engagement rings"
	}
	return c.Search(ctx, Request{
		Query:         fmt.Sprintf("%s jewelry trends popular styles fashion designer", category),
		SearchDepth:   DepthAdvanced,
		IncludeAnswer: true,
		MaxResults:    7,
	})
}

// TestConnection probes the API with a minimal query.
func (c *Client) TestConnection(ctx context.Context) Response {
	return c.Search(ctx, Request{Query: "jewelry industry news", MaxResults: 1})
}
