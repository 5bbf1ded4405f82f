package main

import (
	"context"
	"net/http"

	spotifyauth "github.com/zmb3/spotify/v2/auth"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

// newSpotifyHTTPClient returns the client the search library dispatches with.
// With credentials the client-credentials token source signs every request
// and refreshes the token on its own.
func newSpotifyHTTPClient(ctx context.Context, env *Env) *http.Client {
	baseClient := &http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
		Timeout:   env.SpotifyTimeout,
	}

	if !env.HasSpotifyCredentials() {
		return baseClient
	}

	spotifyConfig := clientcredentials.Config{
		ClientID:     env.SpotifyClientID,
		ClientSecret: env.SpotifyClientSecret,
		TokenURL:     spotifyauth.TokenURL,
	}

	ctx = context.WithValue(ctx, oauth2.HTTPClient, baseClient)
	httpClient := spotifyConfig.Client(ctx)
	httpClient.Timeout = env.SpotifyTimeout

	return httpClient
}
