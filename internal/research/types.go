package research

// Search types routed by the search operation.
const (
	TypeGeneral = "general"
	TypeMarket  = "market"
	TypeProduct = "product"
	TypePrice   = "price"
	TypeTrends  = "trends"
)

// SearchInput selects a query and the preset used to run it. An empty
// SearchType means a general search.
type SearchInput struct {
	Query      string
	SearchType string
}

// Result is one ranked hit.
type Result struct {
	Title         string
	URL           string
	Content       string
	Score         float64
	PublishedDate string
}

// SearchOutput carries the structured hits plus a display-ready
// rendering for widget and model consumption.
type SearchOutput struct {
	Query             string
	Answer            string
	Results           []Result
	FollowUpQuestions []string
	SearchTime        float64
	Formatted         string
}
