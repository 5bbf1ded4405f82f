package search

import (
	"context"

	searchsvc "github.com/angristan/spotify-wrapper/internal/app/services/search"
)

type SearchService interface {
	Search(ctx context.Context, query string, types []string) (searchsvc.Result, error)
}
