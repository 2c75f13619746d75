// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config loads the diary configuration.
//
// Values are collected from environment variables, command-line flags and an
// optional JSON file, merged with mergo (the first source that sets a field
// wins, in that order) and finally completed with defaults. The server uses
// [GetStructuredConfig]; the terminal client uses [GetClientConfig].
package config
