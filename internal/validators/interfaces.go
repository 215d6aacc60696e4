// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks case records before they are stored or merged.
//
// A [Validator] accepts a value and an optional list of field names. When
// fields are given, only those checks run; otherwise every check for the
// value's type runs.
package validators

import "context"

// Validator validates arbitrary values, optionally restricted to the named
// fields.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
