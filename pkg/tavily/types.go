package tavily

// SearchDepth values accepted by the API.
const (
	DepthBasic    = "basic"
	DepthAdvanced = "advanced"
)

// Request holds the parameters of one search call.
type Request struct {
	Query          string
	SearchDepth    string // basic (default) or advanced
	IncludeAnswer  bool
	MaxResults     int
	IncludeDomains []string
	ExcludeDomains []string
}

// Result is one ranked search hit, copied through from the provider.
type Result struct {
	Title         string  `json:"title"`
	URL           string  `json:"url"`
	Content       string  `json:"content"`
	Score         float64 `json:"score,omitempty"`
	PublishedDate string  `json:"published_date,omitempty"`
}

// Response is the outcome of a search. Failures are reported in-band:
// callers must check Success before reading Results.
type Response struct {
	Success           bool     `json:"success"`
	Query             string   `json:"query"`
	Results           []Result `json:"results"`
	Answer            string   `json:"answer,omitempty"`
	FollowUpQuestions []string `json:"follow_up_questions,omitempty"`
	SearchTime        float64  `json:"search_time,omitempty"`
	Error             string   `json:"error,omitempty"`
}

// searchPayload is the wire request body.
type searchPayload struct {
	Query             string   `json:"query"`
	SearchDepth       string   `json:"search_depth"`
	IncludeAnswer     bool     `json:"include_answer"`
	IncludeRawContent bool     `json:"include_raw_content"`
	MaxResults        int      `json:"max_results"`
	IncludeDomains    []string `json:"include_domains,omitempty"`
	ExcludeDomains    []string `json:"exclude_domains,omitempty"`
}

// searchReply is the wire response body.
type searchReply struct {
	Answer            string   `json:"answer"`
	FollowUpQuestions []string `json:"follow_up_questions"`
	Results           []struct {
		Title         string  `json:"title"`
		URL           string  `json:"url"`
		Content       string  `json:"content"`
		Score         float64 `json:"score"`
		PublishedDate string  `json:"published_date"`
	} `json:"results"`
}
