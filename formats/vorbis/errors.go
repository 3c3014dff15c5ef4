// SPDX-License-Identifier: EPL-2.0

package vorbis

import "errors"

// ErrInvalidStream indicates the input has no readable Vorbis headers.
var ErrInvalidStream = errors.New("invalid ogg vorbis stream")
