// Equality Atlas - Gender Equality Statistics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/equalityatlas

package cache

import (
	"bytes"
	"net/http"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/equalityatlas/internal/logging"
	"github.com/tomtom215/equalityatlas/internal/metrics"
)

// HeaderCache reports whether a response came from the cache.
const HeaderCache = "X-Cache"

// cachedResponse is what the middleware stores for one key.
type cachedResponse struct {
	ContentType        string `json:"contentType"`
	ContentDisposition string `json:"contentDisposition,omitempty"`
	Body               []byte `json:"body"`
}

// Key returns the cache key for r.
func Key(r *http.Request) string {
	return KeyPrefix + r.Method + ":" + r.URL.RequestURI()
}

// Middleware serves GET requests of a route group from b. group labels the
// hit and miss metrics; ttl applies to every response stored by this group.
// Only 200 responses are stored.
func Middleware(b Backend, group string, ttl time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodGet {
				next.ServeHTTP(w, r)
				return
			}

			ctx := r.Context()
			key := Key(r)

			if raw, ok, err := b.Get(ctx, key); err != nil {
				metrics.CacheErrors.WithLabelValues(b.Name(), "get").Inc()
				logging.Ctx(ctx).Warn().Err(err).Str("key", key).Msg("Cache read failed")
			} else if ok {
				var cached cachedResponse
				if err := json.Unmarshal(raw, &cached); err == nil {
					metrics.RecordCacheLookup(group, true)
					w.Header().Set("Content-Type", cached.ContentType)
					if cached.ContentDisposition != "" {
						w.Header().Set("Content-Disposition", cached.ContentDisposition)
					}
					w.Header().Set(HeaderCache, "HIT")
					w.WriteHeader(http.StatusOK)
					_, _ = w.Write(cached.Body)
					return
				}
				metrics.CacheErrors.WithLabelValues(b.Name(), "decode").Inc()
			}

			metrics.RecordCacheLookup(group, false)
			w.Header().Set(HeaderCache, "MISS")

			rec := &recorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)

			if rec.status != http.StatusOK {
				return
			}
			raw, err := json.Marshal(cachedResponse{
				ContentType:        w.Header().Get("Content-Type"),
				ContentDisposition: w.Header().Get("Content-Disposition"),
				Body:               rec.body.Bytes(),
			})
			if err == nil {
				err = b.Set(ctx, key, raw, ttl)
			}
			if err != nil {
				metrics.CacheErrors.WithLabelValues(b.Name(), "set").Inc()
				logging.Ctx(ctx).Warn().Err(err).Str("key", key).Msg("Cache write failed")
			}
		})
	}
}

// recorder passes the response through while keeping a copy of the body.
type recorder struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
	body        bytes.Buffer
}

func (r *recorder) WriteHeader(code int) {
	if r.wroteHeader {
		return
	}
	r.status = code
	r.wroteHeader = true
	r.ResponseWriter.WriteHeader(code)
}

func (r *recorder) Write(p []byte) (int, error) {
	if !r.wroteHeader {
		r.WriteHeader(http.StatusOK)
	}
	r.body.Write(p)
	return r.ResponseWriter.Write(p)
}

func (r *recorder) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}
