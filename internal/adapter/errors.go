// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
	"net/http"
)

// Status sentinels wrapped by [*ServiceError].
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")
	ErrUnexpectedStatus    = errors.New("unexpected status")
)

// ErrTransport marks failures where no reply was received: connection
// errors, timeouts and cancellation.
var ErrTransport = errors.New("transport error")

// ErrMalformedResponse marks a 2xx reply whose body could not be used.
var ErrMalformedResponse = errors.New("malformed response")

// ServiceError is a non-2xx reply from the service. Reason and Message hold
// the "error" and "message" fields of the JSON failure payload, empty when
// the body had none.
type ServiceError struct {
	Status  int
	Reason  string
	Message string

	kind error
}

// Error implements error.
func (e *ServiceError) Error() string {
	if text := e.Text(); text != "" {
		return fmt.Sprintf("http %d: %s", e.Status, text)
	}
	return fmt.Sprintf("http %d: %s", e.Status, http.StatusText(e.Status))
}

// Unwrap exposes the status sentinel to errors.Is.
func (e *ServiceError) Unwrap() error {
	return e.kind
}

// Text returns the service-provided description: Message when present,
// otherwise Reason.
func (e *ServiceError) Text() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Reason
}

// MessageOr returns the service-provided text carried by err, or fallback
// when err carries none (transport failures, empty bodies).
func MessageOr(err error, fallback string) string {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		if text := svcErr.Text(); text != "" {
			return text
		}
	}
	return fallback
}
