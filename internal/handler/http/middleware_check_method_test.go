// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckHTTPMethod_UnregisteredMethodIs404(t *testing.T) {
	tests := []struct {
		method string
		target string
	}{
		{http.MethodGet, "/login"},
		{http.MethodGet, "/register"},
		{http.MethodPut, "/chat"},
		{http.MethodPost, "/api/version"},
		{http.MethodDelete, "/metrics"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.target, func(t *testing.T) {
			h, _ := newTestHandler(t)

			rr := serve(h, tt.method, tt.target, "", nil)

			assert.Equal(t, http.StatusNotFound, rr.Code)
			assert.Equal(t, "Not Found", decodeErrorBody(t, rr).Error)
		})
	}
}
