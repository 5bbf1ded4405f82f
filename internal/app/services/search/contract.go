package search

import (
	"context"
	"net/http"
	"time"
)

type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

type Searcher interface {
	Search(ctx context.Context, query string, types ...string) (*http.Response, error)
}
