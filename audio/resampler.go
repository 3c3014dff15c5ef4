// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"strings"

	"github.com/ik5/xfadegen/utils"
)

// ResampleMode decides when a clip is resampled to the output rate.
type ResampleMode int

const (
	// ResampleOff treats a rate mismatch as exhaustion (legacy behaviour).
	ResampleOff ResampleMode = iota
	// ResampleAuto resamples only on rate mismatch.
	ResampleAuto
	// ResampleForce always runs the interpolation path, even 1:1.
	ResampleForce
)

func (m ResampleMode) String() string {
	switch m {
	case ResampleOff:
		return "off"
	case ResampleAuto:
		return "auto"
	case ResampleForce:
		return "force"
	default:
		return fmt.Sprintf("ResampleMode(%d)", int(m))
	}
}

// ParseResampleMode accepts the names produced by ResampleMode.String.
func ParseResampleMode(s string) (ResampleMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "off":
		return ResampleOff, nil
	case "auto", "":
		return ResampleAuto, nil
	case "force":
		return ResampleForce, nil
	}

	return ResampleAuto, fmt.Errorf("%q: %w", s, ErrUnknownResampleMode)
}

// ResampleQuality selects the interpolation kernel.
type ResampleQuality int

const (
	QualityNearest ResampleQuality = iota
	QualityLinear
	QualityHermite4
)

func (q ResampleQuality) String() string {
	switch q {
	case QualityNearest:
		return "nearest"
	case QualityLinear:
		return "linear"
	case QualityHermite4:
		return "hermite4"
	default:
		return fmt.Sprintf("ResampleQuality(%d)", int(q))
	}
}

// ParseResampleQuality accepts the names produced by ResampleQuality.String.
func ParseResampleQuality(s string) (ResampleQuality, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "nearest":
		return QualityNearest, nil
	case "linear", "":
		return QualityLinear, nil
	case "hermite4", "hermite", "cubic":
		return QualityHermite4, nil
	}

	return QualityLinear, fmt.Errorf("%q: %w", s, ErrUnknownResampleQuality)
}

// Interp interpolates between x0 and x1 at fractional position t in [0,1).
// xm1 and x2 are the neighbours one step before and after; only the 4-point
// kernel reads them. Unknown qualities fall back to linear.
//
// t == 0 yields x0 and t == 1 yields x1 exactly for every kernel.
func Interp(q ResampleQuality, xm1, x0, x1, x2, t float32) float32 {
	if t >= 1 {
		return x1
	}

	switch q {
	case QualityNearest:
		if t < 0.5 {
			return x0
		}
		return x1

	case QualityHermite4:
		return utils.CubicInterpolate(xm1, x0, x1, x2, t)

	default:
		return x0 + (x1-x0)*t
	}
}
