// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport of the code-tutor server.
//
// It exposes the chi router, the /register, /login and /chat handlers, the
// version and metrics endpoints, and the middleware chain: trace ids, access
// logging, Prometheus metrics, CORS, gzip and bearer-token authentication.
// Handlers decode requests, delegate to the service layer and map service
// errors to JSON error bodies.
package http
