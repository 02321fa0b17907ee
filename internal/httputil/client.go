package httputil

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
)

const DefaultTimeout = 30 * time.Second

// NewClient returns an HTTP client with standard timeout configuration.
func NewClient() *http.Client {
	return &http.Client{
		Timeout: DefaultTimeout,
	}
}

// WaitHealthy polls url until it answers 200 or maxElapsed passes. Connection
// errors and 5xx responses are retried; anything else fails immediately.
func WaitHealthy(ctx context.Context, client *http.Client, url string, maxElapsed time.Duration) error {
	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("build request: %w", err))
		}
		resp, err := client.Do(req)
		if err != nil {
			return fmt.Errorf("health check: %w", err)
		}
		defer resp.Body.Close()
		_, _ = io.Copy(io.Discard, resp.Body)

		switch {
		case resp.StatusCode == http.StatusOK:
			return nil
		case resp.StatusCode >= 500:
			return fmt.Errorf("health check: status %d", resp.StatusCode)
		default:
			return backoff.Permanent(fmt.Errorf("health check: status %d", resp.StatusCode))
		}
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 100 * time.Millisecond
	bo.MaxElapsedTime = maxElapsed
	return backoff.Retry(operation, backoff.WithContext(bo, ctx))
}
