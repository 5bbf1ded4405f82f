// Package spotify builds Spotify catalog search URLs and performs the GET
// request against them. Responses are handed back untouched.
package spotify

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/angristan/spotify-wrapper/spotify"

type Client struct {
	tracer     trace.Tracer
	logger     logrus.FieldLogger
	httpClient *http.Client
	endpoint   string
}

type Option func(*Client)

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// WithEndpoint replaces SearchEndpoint, e.g. to point at a test server.
func WithEndpoint(endpoint string) Option {
	return func(c *Client) {
		if endpoint != "" {
			c.endpoint = endpoint
		}
	}
}

func WithTracer(tracer trace.Tracer) Option {
	return func(c *Client) {
		if tracer != nil {
			c.tracer = tracer
		}
	}
}

func WithLogger(logger logrus.FieldLogger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

func New(opts ...Option) *Client {
	client := &Client{
		tracer:     otel.Tracer(tracerName),
		logger:     logrus.StandardLogger(),
		httpClient: http.DefaultClient,
		endpoint:   SearchEndpoint,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}
