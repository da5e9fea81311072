// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-code-tutor/internal/adapter"
	"github.com/MKhiriev/go-code-tutor/internal/app"
)

// humanizeError picks the text shown for a failed action. Network failures
// become [app.MsgServerUnavailable]; otherwise the message the service
// recorded wins over the raw error. A malformed reply means the server is up,
// so it falls through to the recorded message.
func humanizeError(err error, recorded string) string {
	if err == nil {
		return ""
	}
	if isServerUnavailable(err) {
		return app.MsgServerUnavailable
	}
	if recorded != "" {
		return recorded
	}
	return err.Error()
}

func isServerUnavailable(err error) bool {
	if errors.Is(err, adapter.ErrMalformedResponse) {
		return false
	}
	if errors.Is(err, adapter.ErrTransport) {
		return true
	}

	s := strings.ToLower(err.Error())
	return strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded")
}
