package search

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/angristan/spotify-wrapper/internal/infra/repository/cache/redis"
	"github.com/angristan/spotify-wrapper/spotify"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const (
	cacheTTL         = time.Hour * 24
	cacheContentType = "application/json; charset=utf-8"
)

func (s SearchService) Search(ctx context.Context, query string, types []string) (Result, error) {
	ctx, span := s.tracer.Start(ctx, "SearchService.Search")
	defer span.End()

	if err := validateTypes(types); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return Result{}, err
	}
	if query == "" {
		return Result{}, ErrEmptyQuery
	}

	qType := strings.Join(types, ",")
	span.SetAttributes(
		attribute.String("query", query),
		attribute.String("type", qType),
	)

	// Check if the result is cached
	key := qType + ":" + query
	val, err := s.cache.Get(ctx, key)
	if err != nil && !errors.Is(err, redis.ErrCacheMiss) {
		span.RecordError(err)
	}
	if err == nil && val != "" {
		span.AddEvent("Cache hit")
		return Result{
			StatusCode:  http.StatusOK,
			ContentType: cacheContentType,
			Body:        []byte(val),
		}, nil
	}
	span.AddEvent("Cache miss")

	// The client sends the query verbatim, so it has to be encoded here
	resp, err := s.searcher.Search(ctx, url.QueryEscape(query), types...)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return Result{}, fmt.Errorf("%w: %s", ErrSpotifyClient, err.Error())
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		span.RecordError(err)
		return Result{}, fmt.Errorf("%w: read body: %s", ErrSpotifyClient, err.Error())
	}

	result := Result{
		StatusCode:  resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		Body:        body,
	}
	span.SetAttributes(attribute.Int("spotify.status_code", resp.StatusCode))

	if resp.StatusCode != http.StatusOK {
		return result, nil
	}

	// Cache the result
	err = s.cache.Set(ctx, key, body, cacheTTL)
	if err != nil {
		span.RecordError(err)
	}

	return result, nil
}

func validateTypes(types []string) error {
	if len(types) == 0 {
		return fmt.Errorf("%w: no type given", ErrInvalidSearchType)
	}

	for _, t := range types {
		switch t {
		case spotify.TypeAlbum, spotify.TypeArtist, spotify.TypePlaylist, spotify.TypeTrack:
		default:
			return fmt.Errorf("%w: %s", ErrInvalidSearchType, t)
		}
	}

	return nil
}
