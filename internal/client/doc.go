// Equality Atlas - Gender Equality Statistics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/equalityatlas

/*
Package client is a Go consumer of the Equality Atlas HTTP API.

Requests are paced by a token bucket (golang.org/x/time/rate), retried with
exponential backoff (cenkalti/backoff/v5) on transport errors and 5xx
responses, and guarded by a circuit breaker (sony/gobreaker/v2) that fails
fast once the server has returned consecutive server errors. Client errors
(4xx) are never retried and never trip the breaker; they surface as
*APIError carrying the server's error envelope.

Usage:

	c, err := client.New(client.Config{BaseURL: "http://localhost:3000"})
	if err != nil {
		return err
	}
	res, err := c.Rankings(ctx, "WBL_INDEX", 20)
*/
package client
