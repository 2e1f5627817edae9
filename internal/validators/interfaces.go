// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks client input before it reaches the stores or
// the upstream chat API.
//
// RequestValidator knows the request shapes accepted by the API:
// credentials, mood entries, chat messages and profile updates. Services
// hold it behind the Validator interface so tests can substitute their own.
package validators

import "context"

// Validator checks a request value. Passing field names limits the check
// to those fields; without them every field of the value is checked.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
