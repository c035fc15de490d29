package coingecko_common

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"time"
)

// IHttpStatusHandler is an interface for handling HTTP request statuses
type IHttpStatusHandler interface {
	// OnRequest handles a request with its status result
	OnRequest(status string)
	// OnRetry handles retry events
	OnRetry()
}

// RetryOptions configures retry behavior for HTTP requests
type RetryOptions struct {
	// MaxAttempts is the total number of attempts, including the first one
	MaxAttempts int
	// BaseBackoff is multiplied by the attempt number for the wait between
	// transient failures; a Retry-After header overrides it
	BaseBackoff time.Duration
	LogPrefix   string
	// RequestTimeout bounds a single attempt including reading the response
	RequestTimeout time.Duration
}

// DefaultRetryOptions returns default retry options
func DefaultRetryOptions() RetryOptions {
	return RetryOptions{
		MaxAttempts:    3,
		BaseBackoff:    500 * time.Millisecond,
		LogPrefix:      "HTTP",
		RequestTimeout: 7 * time.Second,
	}
}

// HTTPClientWithRetries wraps an HTTP client with throttling and retry
// handling for transient upstream statuses (429, 502, 503, 504). Any other
// non-2xx status is terminal and returned as *UpstreamError without further
// attempts. Network and timeout failures are likewise terminal: the caller's
// fallback path, not another attempt on the same URL, handles those.
type HTTPClientWithRetries struct {
	Client        *http.Client
	Opts          RetryOptions
	StatusHandler IHttpStatusHandler
	Throttle      *Throttle
}

// NewHTTPClientWithRetries creates a new HTTP client with retry capabilities
func NewHTTPClientWithRetries(opts RetryOptions, handler IHttpStatusHandler, throttle *Throttle) *HTTPClientWithRetries {
	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = 1
	}

	return &HTTPClientWithRetries{
		Client:        &http.Client{Timeout: opts.RequestTimeout},
		Opts:          opts,
		StatusHandler: handler,
		Throttle:      throttle,
	}
}

// ExecuteRequest executes an HTTP request, retrying transient statuses up to
// Opts.MaxAttempts times, and returns the response body on success.
func (c *HTTPClientWithRetries) ExecuteRequest(req *http.Request) ([]byte, error) {
	var lastErr error

	for attempt := 1; attempt <= c.Opts.MaxAttempts; attempt++ {
		if attempt > 1 {
			if c.StatusHandler != nil {
				c.StatusHandler.OnRetry()
			}
			log.Printf("%s: Retry %d/%d after: %v",
				c.Opts.LogPrefix, attempt-1, c.Opts.MaxAttempts-1, lastErr)
		}

		if err := c.Throttle.Wait(req.Context()); err != nil {
			return nil, fmt.Errorf("throttle wait failed: %w", err)
		}

		resp, err := c.Client.Do(req)
		if err != nil {
			// Network or timeout failure: terminal, same as a hard
			// upstream error
			if c.StatusHandler != nil {
				c.StatusHandler.OnRequest("error")
			}
			return nil, fmt.Errorf("request failed: %w", err)
		}

		body, readErr := io.ReadAll(resp.Body)
		resp.Body.Close()

		if isRetryableStatus(resp.StatusCode) {
			lastErr = &UpstreamError{
				StatusCode:  resp.StatusCode,
				Body:        body,
				ContentType: resp.Header.Get("Content-Type"),
			}
			if c.StatusHandler != nil {
				c.StatusHandler.OnRequest("rate_limited")
			}
			if attempt < c.Opts.MaxAttempts {
				wait := c.backoffFor(resp, attempt)
				log.Printf("%s: Transient status %d, waiting %v before retry",
					c.Opts.LogPrefix, resp.StatusCode, wait)
				if err := sleepContext(req.Context(), wait); err != nil {
					return nil, err
				}
			}
			continue
		}

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			if c.StatusHandler != nil {
				c.StatusHandler.OnRequest("error")
			}
			return nil, &UpstreamError{
				StatusCode:  resp.StatusCode,
				Body:        body,
				ContentType: resp.Header.Get("Content-Type"),
			}
		}

		if readErr != nil {
			if c.StatusHandler != nil {
				c.StatusHandler.OnRequest("error")
			}
			return nil, fmt.Errorf("error reading response: %w", readErr)
		}

		if c.StatusHandler != nil {
			c.StatusHandler.OnRequest("success")
		}
		return body, nil
	}

	return nil, fmt.Errorf("all %d attempts failed, last error: %w",
		c.Opts.MaxAttempts, lastErr)
}

// backoffFor computes the wait before the next attempt: the Retry-After
// header in seconds when present, else BaseBackoff scaled linearly by the
// attempt number.
func (c *HTTPClientWithRetries) backoffFor(resp *http.Response, attempt int) time.Duration {
	if ra := resp.Header.Get("Retry-After"); ra != "" {
		if seconds, err := strconv.Atoi(ra); err == nil && seconds > 0 {
			return time.Duration(seconds) * time.Second
		}
	}
	return c.Opts.BaseBackoff * time.Duration(attempt)
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// isRetryableStatus determines if a given HTTP status code should trigger a retry
func isRetryableStatus(statusCode int) bool {
	return statusCode == http.StatusTooManyRequests ||
		statusCode == http.StatusBadGateway ||
		statusCode == http.StatusServiceUnavailable ||
		statusCode == http.StatusGatewayTimeout
}
