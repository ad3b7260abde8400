// Equality Atlas - Gender Equality Statistics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/equalityatlas

/*
Package metrics provides Prometheus instrumentation for the API.

Metrics are exposed at /metrics in Prometheus text format:

	curl http://localhost:3000/metrics

# Available Metrics

API Metrics:
  - api_requests_total: requests by method, endpoint (route pattern) and status code
  - api_request_duration_seconds: latency histogram by method and endpoint
  - api_active_requests: in-flight requests (gauge)
  - api_rate_limit_hits_total: rejections by the per-IP limiter

Store Metrics:
  - store_query_duration_seconds: query latency by operation and driver
  - store_query_errors_total: failed queries by operation, driver and error_type
    (timeout, canceled, other); not-found results are not errors

Response Cache Metrics:
  - response_cache_hits_total / response_cache_misses_total by route group
  - response_cache_errors_total by backend and op (get, set, clear)
  - response_cache_invalidations_total by source (nats, manual)

System Metrics:
  - app_info: version and Go version labels, value 1

Endpoints are labelled with the chi route pattern ("/api/indicators/{code}"),
never the raw path, to keep cardinality bounded.
*/
package metrics
