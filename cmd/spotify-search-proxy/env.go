package main

import (
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Env struct {
	SpotifyClientID     string        `env:"SPOTIFY_CLIENT_ID"`
	SpotifyClientSecret string        `env:"SPOTIFY_CLIENT_SECRET"`
	SpotifyTimeout      time.Duration `env:"SPOTIFY_TIMEOUT" env-default:"10s"`

	RedisURL string `env:"REDIS_URL" env-required:"true"`

	Port string `env:"PORT" env-default:"1323"`

	LogFormat string `env:"LOG_FORMAT" env-default:"json"`
	LogLevel  string `env:"LOG_LEVEL" env-default:"info"`

	TracingEndpoint string `env:"TRACING_ENDPOINT"`
}

func LoadEnv() (*Env, error) {
	err := godotenv.Load()
	if err != nil {
		logrus.WithError(err).Warn("Failed to load env variables from file")
	}

	var env Env
	if err := cleanenv.ReadEnv(&env); err != nil {
		return nil, err
	}

	return &env, nil
}

func (e *Env) HasSpotifyCredentials() bool {
	return e.SpotifyClientID != "" && e.SpotifyClientSecret != ""
}

func setupLogger(env *Env) error {
	logrus.SetOutput(os.Stdout)

	switch env.LogFormat {
	case "json":
		logrus.SetFormatter(&logrus.JSONFormatter{})
	case "text":
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	default:
		return fmt.Errorf("unknown log format %q", env.LogFormat)
	}

	level, err := logrus.ParseLevel(env.LogLevel)
	if err != nil {
		return err
	}
	logrus.SetLevel(level)

	return nil
}
