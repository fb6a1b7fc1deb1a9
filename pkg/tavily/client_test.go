package tavily_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"unicode/utf8"

	"jewelry-concierge/pkg/tavily"
)

type nopLogger struct{}

func (nopLogger) Debug(ctx context.Context, arg ...any)                   {}
func (nopLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (nopLogger) Info(ctx context.Context, arg ...any)                    {}
func (nopLogger) Infof(ctx context.Context, template string, arg ...any)  {}
func (nopLogger) Warn(ctx context.Context, arg ...any)                    {}
func (nopLogger) Warnf(ctx context.Context, template string, arg ...any)  {}
func (nopLogger) Error(ctx context.Context, arg ...any)                   {}
func (nopLogger) Errorf(ctx context.Context, template string, arg ...any) {}
func (nopLogger) Fatal(ctx context.Context, arg ...any)                   {}
func (nopLogger) Fatalf(ctx context.Context, template string, arg ...any) {}

type capturedPayload struct {
	Query          string   `json:"query"`
	SearchDepth    string   `json:"search_depth"`
	MaxResults     int      `json:"max_results"`
	IncludeDomains []string `json:"include_domains"`
	ExcludeDomains []string `json:"exclude_domains"`
}

func newSearchServer(t *testing.T, captured *capturedPayload) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(captured); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if strings.Contains(captured.Query, "cause_500") {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"answer": "Lab-grown diamonds keep gaining share.",
			"follow_up_questions": ["What about colored stones?"],
			"results": [
				{"title": "Trend report", "url": "https://example.com/a", "content": "content a", "score": 0.91},
				{"title": "Market watch", "url": "https://example.com/b", "content": "content b", "score": 0.77}
			]
		}`))
	}))
}

func TestSearch(t *testing.T) {
	var captured capturedPayload
	ts := newSearchServer(t, &captured)
	defer ts.Close()

	client, err := tavily.New(nopLogger{}, "tvly-test-key", ts.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("Success Flow", func(t *testing.T) {
		resp := client.Search(context.Background(), tavily.Request{Query: "diamond trends"})
		if !resp.Success {
			t.Fatalf("expected success, got %q", resp.Error)
		}
		if len(resp.Results) != 2 {
			t.Fatalf("expected 2 results, got %d", len(resp.Results))
		}
		if resp.Answer == "" {
			t.Errorf("expected answer passthrough")
		}
		if captured.SearchDepth != tavily.DepthBasic {
			t.Errorf("expected basic depth default, got %q", captured.SearchDepth)
		}
		if captured.MaxResults != 5 {
			t.Errorf("expected default max results 5, got %d", captured.MaxResults)
		}
	})

	t.Run("Server Error Is In Band", func(t *testing.T) {
		resp := client.Search(context.Background(), tavily.Request{Query: "cause_500"})
		if resp.Success {
			t.Fatalf("expected failure on 500")
		}
		if resp.Error == "" {
			t.Errorf("expected error message to be set")
		}
	})

	t.Run("Market Preset Rewrites Query And Restricts Domains", func(t *testing.T) {
		resp := client.MarketSearch(context.Background(), "diamond prices")
		if !resp.Success {
			t.Fatalf("unexpected failure: %q", resp.Error)
		}
		if !strings.Contains(captured.Query, "jewelry market") {
			t.Errorf("market preset must rewrite query, got %q", captured.Query)
		}
		if len(captured.IncludeDomains) == 0 {
			t.Errorf("market preset must set industry domain allow-list")
		}
		if captured.SearchDepth != tavily.DepthAdvanced {
			t.Errorf("market preset must use advanced depth")
		}
	})

	t.Run("Price Preset Excludes Marketplaces", func(t *testing.T) {
		client.PriceComparison(context.Background(), "tennis bracelet", "under $5000")
		if len(captured.ExcludeDomains) == 0 {
			t.Errorf("price preset must set marketplace exclude-list")
		}
		if !strings.Contains(captured.Query, "tennis bracelet") {
			t.Errorf("item missing from rewritten query: %q", captured.Query)
		}
	})

	t.Run("Trend Preset Defaults Category", func(t *testing.T) {
		client.TrendAnalysis(context.Background(), "")
		if !strings.Contains(captured.Query, "engagement rings") {
			t.Errorf("expected default category, got %q", captured.Query)
		}
	})

	t.Run("Missing API Key", func(t *testing.T) {
		if _, err := tavily.New(nopLogger{}, "", ""); err == nil {
			t.Errorf("expected construction error without key")
		}
	})
}

func TestFormatResults(t *testing.T) {
	resp := tavily.Response{
		Success: true,
		Query:   "emerald cuts",
		Answer:  "Emerald cuts are popular.",
		Results: []tavily.Result{
			{Title: "A", URL: "https://a", Content: strings.Repeat("x", 300)},
		},
		FollowUpQuestions: []string{"q1", "q2", "q3", "q4"},
	}

	out := tavily.FormatResults(resp, 2000)
	if !strings.Contains(out, "emerald cuts") {
		t.Errorf("query missing from output")
	}
	if !strings.Contains(out, "Summary:") {
		t.Errorf("answer missing from output")
	}
	if strings.Contains(out, "q4") {
		t.Errorf("follow-up questions must be capped at 3")
	}

	short := tavily.FormatResults(resp, 50)
	if len(short) > 50 {
		t.Errorf("output not truncated: %d chars", len(short))
	}
	if !strings.HasSuffix(short, "...") {
		t.Errorf("truncated output must end with ellipsis")
	}

	failed := tavily.FormatResults(tavily.Response{Success: false, Error: "timeout"}, 100)
	if !strings.Contains(failed, "timeout") {
		t.Errorf("failure output must carry the error")
	}
}

func TestFormatResultsKeepsUTF8Intact(t *testing.T) {
	resp := tavily.Response{
		Success: true,
		Query:   "bagues de fiançailles",
		Answer:  strings.Repeat("é", 400),
		Results: []tavily.Result{
			{Title: "Tendances", URL: "https://a", Content: strings.Repeat("珠宝", 150)},
		},
	}

	// Walk the cut point across several byte offsets so at least some
	// land inside a multi-byte rune.
	for max := 40; max < 60; max++ {
		out := tavily.FormatResults(resp, max)
		if !utf8.ValidString(out) {
			t.Fatalf("invalid UTF-8 at maxLength %d: %q", max, out)
		}
		if len(out) > max {
			t.Errorf("output exceeds %d bytes: %d", max, len(out))
		}
	}

	full := tavily.FormatResults(resp, 5000)
	if !utf8.ValidString(full) {
		t.Errorf("snippet truncation split a rune: %q", full)
	}
}
