// SPDX-License-Identifier: EPL-2.0

package mp3

import "errors"

// ErrInvalidStream indicates go-mp3 could not find a usable frame header.
var ErrInvalidStream = errors.New("invalid mp3 stream")
