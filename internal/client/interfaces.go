// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run(ctx context.Context) error
}

// UI is the interactive surface driven by [App]. It is implemented by
// [tui.TUI].
type UI interface {
	// AuthFlow blocks until the session is authorized or the user quits.
	AuthFlow(ctx context.Context) error
	// ChatLoop blocks until the user quits or logs out.
	ChatLoop(ctx context.Context) (logout bool, err error)
}

var _ Client = (*App)(nil)
