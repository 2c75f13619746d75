// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package diary holds the pure domain rules of the diary: the entry filter
// used by both the server's list endpoint and the client dashboard, and the
// edit-window policy that makes entries read-only a few days after creation.
//
// Nothing in this package performs I/O or keeps state.
package diary
