// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// ErrEmptyAuthorizationHeader is logged by the auth middleware when a
// protected route is called without an "Authorization" header.
var ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")
