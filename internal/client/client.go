// Equality Atlas - Gender Equality Statistics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/equalityatlas

package client

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"github.com/tomtom215/equalityatlas/internal/models"
)

// maxErrorBody bounds how much of an error response is read.
const maxErrorBody = 64 << 10

// Config configures a Client. Zero values take the defaults noted per field.
type Config struct {
	BaseURL string        // server root, e.g. http://localhost:3000
	Timeout time.Duration // per attempt, default 10s

	// RPS paces outgoing requests. Zero or negative disables pacing.
	RPS   float64
	Burst int // default 1

	MaxTries       uint          // attempts per call, default 4
	MaxElapsedTime time.Duration // retry budget per call, default 30s

	// BreakerThreshold is the number of consecutive failed attempts that
	// opens the breaker, default 5. BreakerCooldown is how long it stays
	// open before letting a probe through, default 30s.
	BreakerThreshold uint32
	BreakerCooldown  time.Duration

	HTTPClient *http.Client
	Logger     zerolog.Logger
}

func (c Config) withDefaults() Config {
	if c.Timeout <= 0 {
		c.Timeout = 10 * time.Second
	}
	if c.Burst <= 0 {
		c.Burst = 1
	}
	if c.MaxTries == 0 {
		c.MaxTries = 4
	}
	if c.MaxElapsedTime <= 0 {
		c.MaxElapsedTime = 30 * time.Second
	}
	if c.BreakerThreshold == 0 {
		c.BreakerThreshold = 5
	}
	if c.BreakerCooldown <= 0 {
		c.BreakerCooldown = 30 * time.Second
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{}
	}
	return c
}

// response is one successful HTTP exchange.
type response struct {
	header http.Header
	body   []byte
}

// Client calls the API. It is safe for concurrent use.
type Client struct {
	base    *url.URL
	cfg     Config
	limiter *rate.Limiter // nil when pacing is off
	breaker *gobreaker.CircuitBreaker[*response]
	logger  zerolog.Logger

	// newBackOff is replaced in tests to avoid real sleeps.
	newBackOff func() backoff.BackOff
}

// New validates cfg and builds a Client.
func New(cfg Config) (*Client, error) {
	cfg = cfg.withDefaults()

	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("invalid base url %q: scheme must be http or https", cfg.BaseURL)
	}
	if base.Host == "" {
		return nil, fmt.Errorf("invalid base url %q: missing host", cfg.BaseURL)
	}

	c := &Client{
		base:   base,
		cfg:    cfg,
		logger: cfg.Logger.With().Str("component", "atlas-client").Logger(),
		newBackOff: func() backoff.BackOff {
			return backoff.NewExponentialBackOff()
		},
	}
	if cfg.RPS > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(cfg.RPS), cfg.Burst)
	}

	c.breaker = gobreaker.NewCircuitBreaker[*response](gobreaker.Settings{
		Name:        "atlas-api",
		MaxRequests: 1,
		Timeout:     cfg.BreakerCooldown,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.BreakerThreshold
		},
		// 4xx answers prove the server is up.
		IsSuccessful: func(err error) bool {
			var apiErr *APIError
			if errors.As(err, &apiErr) {
				return !apiErr.Temporary()
			}
			return err == nil
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			c.logger.Warn().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("Circuit breaker state changed")
		},
	})
	return c, nil
}

// BreakerState exposes the circuit breaker state.
func (c *Client) BreakerState() gobreaker.State {
	return c.breaker.State()
}

// get performs a GET against path with retries. The returned body belongs
// to the caller.
func (c *Client) get(ctx context.Context, path string, query url.Values) (*response, error) {
	target := c.base.JoinPath(path)
	target.RawQuery = query.Encode()
	endpoint := target.String()

	attempt := 0
	resp, err := backoff.Retry(ctx, func() (*response, error) {
		attempt++
		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				return nil, backoff.Permanent(err)
			}
		}

		resp, err := c.breaker.Execute(func() (*response, error) {
			return c.send(ctx, endpoint)
		})

		var apiErr *APIError
		switch {
		case err == nil:
			return resp, nil
		case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
			return nil, backoff.Permanent(fmt.Errorf("atlas api unavailable: %w", err))
		case errors.As(err, &apiErr) && !apiErr.Temporary():
			return nil, backoff.Permanent(err)
		case ctx.Err() != nil:
			return nil, backoff.Permanent(err)
		}

		c.logger.Debug().Err(err).Int("attempt", attempt).Str("url", endpoint).Msg("Request failed, retrying")
		return nil, err
	},
		backoff.WithBackOff(c.newBackOff()),
		backoff.WithMaxTries(c.cfg.MaxTries),
		backoff.WithMaxElapsedTime(c.cfg.MaxElapsedTime),
	)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w", path, err)
	}
	return resp, nil
}

// send performs a single attempt.
func (c *Client) send(ctx context.Context, endpoint string) (*response, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json, text/csv")

	res, err := c.cfg.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()

	if res.StatusCode >= 200 && res.StatusCode < 300 {
		body, err := io.ReadAll(res.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to read response body: %w", err)
		}
		return &response{header: res.Header, body: body}, nil
	}

	body, _ := io.ReadAll(io.LimitReader(res.Body, maxErrorBody))
	return nil, decodeAPIError(res.StatusCode, body)
}

// decodeAPIError reads the error envelope; a body that is not one falls back
// to the status text.
func decodeAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{Status: status, Message: http.StatusText(status)}

	var env models.ErrorEnvelope
	if err := json.Unmarshal(bytes.TrimSpace(body), &env); err == nil && env.Error.Message != "" {
		apiErr.Message = env.Error.Message
		apiErr.Details = env.Error.Details
		apiErr.RequestID = env.Error.RequestID
	}
	return apiErr
}

// getJSON decodes a successful response into out.
func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	resp, err := c.get(ctx, path, query)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(resp.body, out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", path, err)
	}
	return nil
}
