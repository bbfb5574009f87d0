package http

import (
	"net/http"
	"time"
)

// BackoffConfig controls the retry ladder applied when a request is executed
// with backoff. The first attempt is always made; MaxRetries additional
// attempts follow while the failure stays retryable.
type BackoffConfig struct {
	// MaxRetries is the number of additional attempts after the first one.
	MaxRetries int
	// BaseDelay is multiplied by the attempt number to produce the wait
	// before the next attempt. Rate-limited (429) attempts wait twice that.
	BaseDelay time.Duration
	// Sleep is the wait function, swappable in tests. Defaults to time.Sleep.
	Sleep func(time.Duration)
}

// NewBackoffConfig creates a backoff configuration with the given retry
// budget and base delay.
func NewBackoffConfig(maxRetries int, baseDelay time.Duration) *BackoffConfig {
	return &BackoffConfig{
		MaxRetries: maxRetries,
		BaseDelay:  baseDelay,
	}
}

// Delay returns the wait duration before the next attempt. attempt is
// 1-based: the delay after the first failed attempt is BaseDelay.
func (b *BackoffConfig) Delay(attempt int, httpStatus int) time.Duration {
	delay := b.BaseDelay * time.Duration(attempt)
	if httpStatus == http.StatusTooManyRequests {
		delay *= 2
	}
	return delay
}

func (b *BackoffConfig) wait(attempt int, httpStatus int) {
	sleep := b.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}
	sleep(b.Delay(attempt, httpStatus))
}

// isRetryable reports whether another attempt may change the outcome.
// Network failures (no status), 5xx and 429 are transient; any other 4xx,
// notably 400 and 404, signals a non-transient condition and is never
// retried.
func isRetryable(httpStatus int, err error) bool {
	if err == nil {
		return false
	}
	if httpStatus == 0 {
		return true
	}
	return httpStatus == http.StatusTooManyRequests || httpStatus >= 500
}
