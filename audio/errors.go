// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidFormat          = errors.New("invalid audio format")
	ErrInvalidPCM             = errors.New("invalid PCM buffer")
	ErrEmptySource            = errors.New("source produced no samples")
	ErrUnsupportedFormat      = errors.New("no decoder registered for format")
	ErrUnknownResampleMode    = errors.New("unknown resample mode")
	ErrUnknownResampleQuality = errors.New("unknown resample quality")
)
