package tavily

import "context"

// ISearch is the search surface consumed by the research domain. The
// preset methods all delegate to Search with rewritten queries and
// domain filters.
type ISearch interface {
	Search(ctx context.Context, req Request) Response
	MarketSearch(ctx context.Context, query string) Response
	ProductResearch(ctx context.Context, productType, specifications string) Response
	PriceComparison(ctx context.Context, item, budgetRange string) Response
	TrendAnalysis(ctx context.Context, category string) Response
	TestConnection(ctx context.Context) Response
}

var _ ISearch = (*Client)(nil)
