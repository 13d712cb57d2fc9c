package majsoul

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// retryDiscovery re-runs a discovery step with exponential backoff. The
// published discovery documents sit behind a CDN and fail transiently;
// websocket-level failures are not retried since the whole session has to
// be rebuilt anyway.
func retryDiscovery(ctx context.Context, logger *zap.Logger, attempts int, fn func(context.Context) error) error {
	if attempts < 1 {
		attempts = 1
	}

	delay := 200 * time.Millisecond
	var err error
	for attempt := 1; ; attempt++ {
		if err = fn(ctx); err == nil {
			return nil
		}
		if attempt >= attempts {
			return err
		}
		logger.Warn("discovery attempt failed, retrying",
			zap.Int("attempt", attempt),
			zap.Duration("backoff", delay),
			zap.Error(err))

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
		delay *= 2
	}
}
