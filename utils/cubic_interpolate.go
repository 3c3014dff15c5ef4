// SPDX-License-Identifier: EPL-2.0

package utils

// CubicInterpolate is the 4-point Hermite (Catmull-Rom) kernel.
// x is the fractional position between y1 and y2 (0 <= x <= 1);
// y0 and y3 are the neighbours before y1 and after y2.
func CubicInterpolate(y0, y1, y2, y3, x float32) float32 {
	c1 := 0.5 * (y2 - y0)
	c2 := y0 - 2.5*y1 + 2*y2 - 0.5*y3
	c3 := 0.5*(y3-y0) + 1.5*(y1-y2)

	return ((c3*x+c2)*x+c1)*x + y1
}
