package research

import "context"

// UseCase is the web-research business surface.
type UseCase interface {
	Search(ctx context.Context, input SearchInput) (SearchOutput, error)
	Trends(ctx context.Context, category string) (SearchOutput, error)
	Market(ctx context.Context, query string) (SearchOutput, error)
}
