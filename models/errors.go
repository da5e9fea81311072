// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ErrorResponse is the failure body of every endpoint. Error holds either a
// human-readable message or a machine code (e.g. "code_too_large"), in which
// case Message carries the explanation.
type ErrorResponse struct {
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}

// Text returns the most descriptive message in the payload: Message when
// present, otherwise Error.
func (e ErrorResponse) Text() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Error
}
