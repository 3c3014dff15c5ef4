// SPDX-License-Identifier: EPL-2.0

package intpcm

import "errors"

// ErrNoFormat is returned when a decoder has no sample rate or channel count.
var ErrNoFormat = errors.New("no PCM format")
