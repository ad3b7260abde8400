// Equality Atlas - Gender Equality Statistics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/equalityatlas

/*
Package supervisor runs the long-lived parts of the server under a suture
supervision tree.

	equalityatlas (root)
	├── messaging-layer
	│   └── cache-invalidator (NATS subscriber, optional)
	└── api-layer
	    └── http-server

A crash in the messaging layer restarts the subscriber with backoff and
leaves the HTTP server running; cached responses simply stay until their
TTL expires. Supervisor events are logged through sutureslog, which takes
the slog bridge of the application logger.

Usage:

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(logger), supervisor.DefaultTreeConfig())
	tree.AddMessagingService(cache.NewInvalidator(cfg.NATS, backend, logger))
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
	err = tree.Serve(ctx)
*/
package supervisor
