package search

import (
	"go.opentelemetry.io/otel/trace"
)

type SearchHandler struct {
	tracer        trace.Tracer
	searchService SearchService
}

func New(
	tracer trace.Tracer,
	searchService SearchService,
) *SearchHandler {
	return &SearchHandler{
		tracer:        tracer,
		searchService: searchService,
	}
}
