// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

// Server is the lifecycle contract of the transports managed by this package.
type Server interface {
	// RunServer starts serving and blocks until the server stops.
	RunServer()

	// Shutdown gracefully stops the server.
	Shutdown()
}

// transport is one listener run by [server]. Serve blocks and returns a
// non-nil error only when serving failed.
type transport interface {
	Serve() error
	Shutdown()
}
