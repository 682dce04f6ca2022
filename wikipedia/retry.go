package wikipedia

import (
	"context"
	"time"

	"github.com/dtomczyk/placelist"
)

// ExtractFunc is the signature of a single extract attempt.
type ExtractFunc func(ctx context.Context, title string) (string, error)

// DefaultRetryDelays returns the backoff delays for extract retries: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// ExtractWithRetry attempts an extract fetch with exponential backoff.
// It retries up to 3 times (4 total attempts) with delays of 1s, 2s, 4s.
func ExtractWithRetry(ctx context.Context, title string, fetch ExtractFunc) (string, error) {
	return ExtractWithRetryDelays(ctx, title, fetch, DefaultRetryDelays())
}

// ExtractWithRetryDelays is like ExtractWithRetry but allows configurable
// delays. This is useful for testing without waiting for real delays.
func ExtractWithRetryDelays(ctx context.Context, title string, fetch ExtractFunc, delays []time.Duration) (string, error) {
	maxAttempts := len(delays) + 1 // 1 initial + N retries

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		html, err := fetch(ctx, title)
		if err == nil {
			return html, nil
		}
		lastErr = err

		// Missing pages don't become present on retry.
		if code := placelist.ErrorCode(err); code == placelist.ENOTFOUND || code == placelist.EINVALID {
			return "", err
		}

		if attempt >= maxAttempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}
	return "", lastErr
}
