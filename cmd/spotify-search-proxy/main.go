package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	searchsvc "github.com/angristan/spotify-wrapper/internal/app/services/search"
	server "github.com/angristan/spotify-wrapper/internal/infra/http"
	searchhandler "github.com/angristan/spotify-wrapper/internal/infra/http/handlers/search"
	"github.com/angristan/spotify-wrapper/internal/infra/repository/cache/redis"
	"github.com/angristan/spotify-wrapper/spotify"
	goredis "github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/sdk/trace"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	env, err := LoadEnv()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load environment variables")
	}

	if err := setupLogger(env); err != nil {
		logrus.WithError(err).Fatal("Failed to setup logger")
	}

	var spanExporter trace.SpanExporter
	if env.TracingEndpoint != "" {
		spanExporter, err = newSpanExporter(ctx, env.TracingEndpoint)
		if err != nil {
			logrus.WithError(err).Fatal("Failed to create span exporter")
		}
	}

	tracerProvider, err := newTracerProvider(ctx, spanExporter)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to create tracer provider")
	}
	otel.SetTracerProvider(tracerProvider)
	tracer := tracerProvider.Tracer("spotify-search-proxy")

	redisOptions, err := goredis.ParseURL(env.RedisURL)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to parse redis URL")
	}
	redisClient := goredis.NewClient(redisOptions)
	defer redisClient.Close()

	if !env.HasSpotifyCredentials() {
		logrus.Warn("No Spotify credentials configured, requests will be sent unauthenticated")
	}

	spotifyClient := spotify.New(
		spotify.WithHTTPClient(newSpotifyHTTPClient(ctx, env)),
		spotify.WithTracer(tracer),
		spotify.WithLogger(logrus.WithField("component", "spotify")),
	)

	searchService := searchsvc.New(
		tracer,
		spotifyClient,
		redis.NewCache(redisClient, time.Hour*24),
	)

	srv, err := server.New(
		server.NewConfig(env.Port, false),
		searchhandler.New(tracer, searchService),
	)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to create server")
	}

	go func() {
		logrus.WithField("addr", srv.Addr).Info("Starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.WithError(err).Fatal("Server stopped")
		}
	}()

	<-ctx.Done()
	logrus.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Failed to shutdown server")
	}
	if err := tracerProvider.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Failed to shutdown tracer provider")
	}
}
