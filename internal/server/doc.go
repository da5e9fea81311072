// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server wires and runs the code-tutor transport servers.
//
// It starts the HTTP API and the gRPC health server, waits for
// SIGINT/SIGTERM/SIGQUIT or a server failure, and shuts every enabled
// transport down gracefully.
package server
