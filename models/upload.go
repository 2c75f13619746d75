// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "io"

// Upload is a single image received from a client, ready to be hosted.
type Upload struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}
