package http

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDelayGrowsLinearlyWithAttempt(t *testing.T) {
	backoff := NewBackoffConfig(3, time.Second)

	assert.Equal(t, time.Second, backoff.Delay(1, 500))
	assert.Equal(t, 2*time.Second, backoff.Delay(2, 500))
	assert.Equal(t, 3*time.Second, backoff.Delay(3, 500))
}

func TestDelayDoublesForRateLimit(t *testing.T) {
	backoff := NewBackoffConfig(3, time.Second)

	assert.Equal(t, 2*time.Second, backoff.Delay(1, 429))
	assert.Equal(t, 4*time.Second, backoff.Delay(2, 429))
}

func TestIsRetryable(t *testing.T) {
	err := assert.AnError

	tests := []struct {
		name   string
		status int
		err    error
		want   bool
	}{
		{"success is never retried", 200, nil, false},
		{"network failure is retried", 0, err, true},
		{"rate limit is retried", 429, err, true},
		{"server error is retried", 500, err, true},
		{"bad gateway is retried", 502, err, true},
		{"bad request is not retried", 400, err, false},
		{"unauthorized is not retried", 401, err, false},
		{"not found is not retried", 404, err, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isRetryable(tt.status, tt.err))
		})
	}
}

func TestRequestRetriesUntilSuccess(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) <= 2 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	var slept []time.Duration
	backoff := NewBackoffConfig(3, time.Second)
	backoff.Sleep = func(d time.Duration) { slept = append(slept, d) }

	client := NewHttpClient(server.URL, ClientOptions{})
	var result map[string]bool
	_, _, status, err := client.Request().
		WithMethod(GET).
		WithPath("/data").
		WithSuccessResp(&result).
		WithBackoff(backoff).
		Execute()

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, status)
	assert.True(t, result["ok"])
	assert.Equal(t, int32(3), calls.Load())
	// Rate-limited waits are doubled: 2*base, then 2*base*2.
	assert.Equal(t, []time.Duration{2 * time.Second, 4 * time.Second}, slept)
}

func TestRequestExhaustsRetryBudget(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	backoff := NewBackoffConfig(3, time.Millisecond)
	backoff.Sleep = func(time.Duration) {}

	client := NewHttpClient(server.URL, ClientOptions{})
	_, _, status, err := client.Request().
		WithMethod(GET).
		WithPath("/data").
		WithBackoff(backoff).
		Execute()

	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, status)
	// First attempt plus the full retry budget.
	assert.Equal(t, int32(4), calls.Load())
}

func TestRequestDoesNotRetryClientErrors(t *testing.T) {
	for _, clientStatus := range []int{400, 404} {
		var calls atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.WriteHeader(clientStatus)
		}))

		backoff := NewBackoffConfig(3, time.Millisecond)
		backoff.Sleep = func(time.Duration) { t.Fatal("must not sleep for non-retryable status") }

		client := NewHttpClient(server.URL, ClientOptions{})
		_, _, status, err := client.Request().
			WithMethod(GET).
			WithPath("/data").
			WithBackoff(backoff).
			Execute()

		require.Error(t, err)
		assert.Equal(t, clientStatus, status)
		assert.Equal(t, int32(1), calls.Load())
		server.Close()
	}
}

func TestRequestWithoutBackoffIsSingleAttempt(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewHttpClient(server.URL, ClientOptions{})
	_, _, _, err := client.Request().
		WithMethod(GET).
		WithPath("/data").
		Execute()

	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())
}
