// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request payloads and domain models before they
// reach the store.
//
// A Validator accepts any supported value and an optional list of field
// names. With no fields a default set for that type is checked; naming
// fields restricts validation to them.
package validators

import "context"

// Validator validates the provided input, optionally restricted to the named
// fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
