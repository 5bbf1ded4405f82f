package spotify

import (
	"context"
	"net/http"
)

var defaultClient = New()

// Search runs Client.Search on a client backed by http.DefaultClient.
func Search(ctx context.Context, query string, types ...string) (*http.Response, error) {
	return defaultClient.Search(ctx, query, types...)
}

func SearchArtists(ctx context.Context, query string) (*http.Response, error) {
	return defaultClient.SearchArtists(ctx, query)
}

func SearchAlbums(ctx context.Context, query string) (*http.Response, error) {
	return defaultClient.SearchAlbums(ctx, query)
}

func SearchTracks(ctx context.Context, query string) (*http.Response, error) {
	return defaultClient.SearchTracks(ctx, query)
}

func SearchPlaylists(ctx context.Context, query string) (*http.Response, error) {
	return defaultClient.SearchPlaylists(ctx, query)
}
