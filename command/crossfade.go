// SPDX-License-Identifier: EPL-2.0

package command

import (
	"fmt"
	"math"
	"strings"
)

// Curve selects the crossfade weight function.
type Curve int

const (
	// EqualPower keeps wA² + wB² == 1 across the fade.
	EqualPower Curve = iota
	Linear
	// SCurve is smoothstep over the fade position.
	SCurve
)

func (c Curve) String() string {
	switch c {
	case EqualPower:
		return "equal-power"
	case Linear:
		return "linear"
	case SCurve:
		return "s-curve"
	default:
		return fmt.Sprintf("Curve(%d)", int(c))
	}
}

// ParseCurve converts a configuration string to a Curve. Empty selects EqualPower.
func ParseCurve(s string) (Curve, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "equal-power", "equalpower", "power":
		return EqualPower, nil
	case "linear":
		return Linear, nil
	case "s-curve", "scurve", "smoothstep":
		return SCurve, nil
	default:
		return EqualPower, fmt.Errorf("%q: %w", s, ErrUnknownCurve)
	}
}

// Crossfade asks a crossfade node to move its fade position to Target over
// Duration seconds. A zero Duration switches instantly.
type Crossfade struct {
	Target   float32
	Duration float32
	Curve    Curve
}

// MaxDuration caps fade lengths in seconds. Longer and infinite durations
// are shortened to it.
const MaxDuration float32 = 3600

// NewCrossfade clamps target into [0, 1] and seconds into [0, MaxDuration].
// NaN values become 0.
func NewCrossfade(target, seconds float32, curve Curve) Crossfade {
	return Crossfade{
		Target:   Clamp01(target),
		Duration: clampDuration(seconds),
		Curve:    curve,
	}
}

// Clamp01 limits v to [0, 1]. NaN maps to 0.
func Clamp01(v float32) float32 {
	switch {
	case v > 1:
		return 1
	case v >= 0:
		return v
	default:
		return 0
	}
}

func clampDuration(v float32) float32 {
	if math.IsNaN(float64(v)) || v < 0 {
		return 0
	}

	return min(v, MaxDuration)
}
