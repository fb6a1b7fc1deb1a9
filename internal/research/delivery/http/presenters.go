package http

import (
	"jewelry-concierge/internal/research"
)

// --- Request DTOs ---

type searchReq struct {
	Query      string `json:"query" binding:"required,min=1,max=400"`
	SearchType string `json:"search_type" binding:"omitempty,oneof=general market product price trends"`
}

func (r searchReq) toInput() research.SearchInput {
	return research.SearchInput{
		Query:      r.Query,
		SearchType: r.SearchType,
	}
}

// --- Response DTOs ---

type resultResp struct {
	Title         string  `json:"title"`
	URL           string  `json:"url"`
	Content       string  `json:"content"`
	Score         float64 `json:"score,omitempty"`
	PublishedDate string  `json:"published_date,omitempty"`
}

type searchResp struct {
	Query             string       `json:"query"`
	Answer            string       `json:"answer,omitempty"`
	Results           []resultResp `json:"results"`
	FollowUpQuestions []string     `json:"follow_up_questions,omitempty"`
	SearchTime        float64      `json:"search_time,omitempty"`
	Formatted         string       `json:"formatted"`
}

func newSearchResp(out research.SearchOutput) searchResp {
	results := make([]resultResp, len(out.Results))
	for i, r := range out.Results {
		results[i] = resultResp{
			Title:         r.Title,
			URL:           r.URL,
			Content:       r.Content,
			Score:         r.Score,
			PublishedDate: r.PublishedDate,
		}
	}
	return searchResp{
		Query:             out.Query,
		Answer:            out.Answer,
		Results:           results,
		FollowUpQuestions: out.FollowUpQuestions,
		SearchTime:        out.SearchTime,
		Formatted:         out.Formatted,
	}
}
