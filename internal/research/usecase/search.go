package usecase

import (
	"context"
	"fmt"

	"jewelry-concierge/internal/research"
	"jewelry-concierge/pkg/tavily"
)

// Search routes the query through the preset matching its search type.
// Unknown types fall back to a general search.
func (uc *implUseCase) Search(ctx context.Context, input research.SearchInput) (research.SearchOutput, error) {
	if uc.search == nil {
		return research.SearchOutput{}, research.ErrUnavailable
	}

	var resp tavily.Response
	switch input.SearchType {
	case research.TypeMarket:
		resp = uc.search.MarketSearch(ctx, input.Query)
	case research.TypeProduct:
		resp = uc.search.ProductResearch(ctx, input.Query, "")
	case research.TypePrice:
		resp = uc.search.PriceComparison(ctx, input.Query, "")
	case research.TypeTrends:
		resp = uc.search.TrendAnalysis(ctx, input.Query)
	default:
		resp = uc.search.Search(ctx, tavily.Request{
			Query:         input.Query,
			MaxResults:    5,
			IncludeAnswer: true,
		})
	}

	return uc.toOutput(resp)
}

// Trends reports current styles for a jewelry category. An empty
// category defaults to engagement rings inside the client.
func (uc *implUseCase) Trends(ctx context.Context, category string) (research.SearchOutput, error) {
	if uc.search == nil {
		return research.SearchOutput{}, research.ErrUnavailable
	}
	return uc.toOutput(uc.search.TrendAnalysis(ctx, category))
}

// Market searches industry sources for market and pricing information.
func (uc *implUseCase) Market(ctx context.Context, query string) (research.SearchOutput, error) {
	if uc.search == nil {
		return research.SearchOutput{}, research.ErrUnavailable
	}
	return uc.toOutput(uc.search.MarketSearch(ctx, query))
}

func (uc *implUseCase) toOutput(resp tavily.Response) (research.SearchOutput, error) {
	if !resp.Success {
		return research.SearchOutput{}, fmt.Errorf("%w: %s", research.ErrSearchFailed, resp.Error)
	}

	results := make([]research.Result, len(resp.Results))
	for i, r := range resp.Results {
		results[i] = research.Result{
			Title:         r.Title,
			URL:           r.URL,
			Content:       r.Content,
			Score:         r.Score,
			PublishedDate: r.PublishedDate,
		}
	}

	return research.SearchOutput{
		Query:             resp.Query,
		Answer:            resp.Answer,
		Results:           results,
		FollowUpQuestions: resp.FollowUpQuestions,
		SearchTime:        resp.SearchTime,
		Formatted:         tavily.FormatResults(resp, formattedMaxLen),
	}, nil
}
