package main

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/lox/agrimind/internal/httputil"
)

type HealthcheckCmd struct {
	URL     string        `default:"http://localhost:8080/health" env:"AGRIMIND_HEALTH_URL" help:"Health endpoint to poll."`
	Timeout time.Duration `default:"30s" help:"Give up after this long."`
}

func (c *HealthcheckCmd) Run(logger *zap.Logger) error {
	ctx, cancel := context.WithTimeout(context.Background(), c.Timeout)
	defer cancel()

	if err := httputil.WaitHealthy(ctx, httputil.NewClient(), c.URL, c.Timeout); err != nil {
		return err
	}
	logger.Info("healthy", zap.String("url", c.URL))
	return nil
}
