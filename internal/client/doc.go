// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It restores the stored session or runs the sign-in flow, then hands the
// session to the diary screens until the user quits.
package client
