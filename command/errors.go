// SPDX-License-Identifier: EPL-2.0

package command

import "errors"

// ErrUnknownCurve is returned by ParseCurve for unrecognised names.
var ErrUnknownCurve = errors.New("unknown crossfade curve")
