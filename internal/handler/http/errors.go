// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrRateLimited is reported when the per-user chat window is exhausted.
	ErrRateLimited = errors.New("chat rate limit exceeded")

	// ErrNoUserInContext means an authenticated route ran without the auth
	// middleware populating the request context.
	ErrNoUserInContext = errors.New("no user in request context")
)
