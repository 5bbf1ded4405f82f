package spotify

import (
	"context"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// Search issues a single GET for query against the given types and returns
// whatever the HTTP client returned. Errors are not wrapped and non-2xx
// statuses are not treated as errors. Spaces, control and non-ASCII bytes
// are percent-encoded on the way out; the rest of the query is sent as given.
func (c *Client) Search(ctx context.Context, query string, types ...string) (*http.Response, error) {
	ctx, span := c.tracer.Start(ctx, "spotify.Client.Search")
	defer span.End()

	searchURL := requestURL(c.endpoint, query, types)
	span.SetAttributes(
		attribute.String("query", query),
		attribute.String("type", strings.Join(types, ",")),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	c.logger.WithFields(logrus.Fields{
		"url": searchURL,
	}).Debug("Dispatching search request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	return resp, nil
}

func (c *Client) SearchArtists(ctx context.Context, query string) (*http.Response, error) {
	return c.Search(ctx, query, TypeArtist)
}

func (c *Client) SearchAlbums(ctx context.Context, query string) (*http.Response, error) {
	return c.Search(ctx, query, TypeAlbum)
}

func (c *Client) SearchTracks(ctx context.Context, query string) (*http.Response, error) {
	return c.Search(ctx, query, TypeTrack)
}

func (c *Client) SearchPlaylists(ctx context.Context, query string) (*http.Response, error) {
	return c.Search(ctx, query, TypePlaylist)
}
