package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/lox/agrimind/internal/api"
)

type ServeCmd struct {
	Port            int           `default:"8080" env:"AGRIMIND_PORT" help:"HTTP server port."`
	Metrics         bool          `default:"true" negatable:"" env:"AGRIMIND_METRICS" help:"Expose Prometheus metrics on /metrics."`
	ShutdownTimeout time.Duration `default:"5s" env:"AGRIMIND_SHUTDOWN_TIMEOUT" help:"Grace period for in-flight requests."`
	OGImageTTL      time.Duration `default:"10m" name:"og-image-ttl" env:"AGRIMIND_OG_IMAGE_TTL" help:"How long the social preview image is cached."`
}

func (c *ServeCmd) Run(logger *zap.Logger) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	server := api.NewServer(api.Config{
		Port:            c.Port,
		Logger:          logger,
		Metrics:         c.Metrics,
		ShutdownTimeout: c.ShutdownTimeout,
		OGImageTTL:      c.OGImageTTL,
	})
	return server.Run(ctx)
}
