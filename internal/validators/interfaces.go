// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks user input before it reaches the store.
//
// A [Validator] accepts any supported request value and an optional list of
// field names that restricts which rules run. With no fields, every rule for
// that type runs.
package validators

import "context"

// Validator validates input values, optionally restricted to named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
