package search

import (
	"errors"

	"go.opentelemetry.io/otel/trace"
)

type SearchService struct {
	tracer   trace.Tracer
	searcher Searcher
	cache    Cache
}

func New(
	tracer trace.Tracer,
	searcher Searcher,
	cache Cache,
) SearchService {
	return SearchService{
		tracer:   tracer,
		searcher: searcher,
		cache:    cache,
	}
}

// Result is the upstream answer, kept byte for byte.
type Result struct {
	StatusCode  int
	ContentType string
	Body        []byte
}

var (
	ErrInvalidSearchType = errors.New("invalid search type")
	ErrEmptyQuery        = errors.New("empty query")
	ErrSpotifyClient     = errors.New("spotify client error")
)
