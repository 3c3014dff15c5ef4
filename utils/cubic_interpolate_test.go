// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"math"
	"testing"
)

func TestCubicInterpolate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		y0, y1, y2, y3 float32
		x              float32
		want           float32
	}{
		{"start returns y1", 0, 1, 2, 3, 0, 1},
		{"end returns y2", 0, 1, 2, 3, 1, 2},
		{"linear data stays linear", 1, 2, 3, 4, 0.25, 2.25},
		{"constant data", 0.3, 0.3, 0.3, 0.3, 0.7, 0.3},
		{"symmetric step midpoint", 0, 0, 1, 1, 0.5, 0.5},
		{"step quarter", 0, 0, 1, 1, 0.25, 0.203125},
		{"plateau overshoots", 0, 1, 1, 0, 0.5, 1.125},
		{"negative values", -1, -0.5, 0.5, 1, 0.5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := CubicInterpolate(tt.y0, tt.y1, tt.y2, tt.y3, tt.x)
			if math.Abs(float64(got-tt.want)) > 1e-6 {
				t.Errorf("CubicInterpolate(%v, %v, %v, %v, %v) = %v, want %v",
					tt.y0, tt.y1, tt.y2, tt.y3, tt.x, got, tt.want)
			}
		})
	}
}

func TestCubicInterpolate_Mirror(t *testing.T) {
	t.Parallel()

	ys := [4]float32{0.2, -0.7, 0.9, 0.1}
	for i := range 9 {
		x := float32(i) / 8
		fwd := CubicInterpolate(ys[0], ys[1], ys[2], ys[3], x)
		rev := CubicInterpolate(ys[3], ys[2], ys[1], ys[0], 1-x)
		if math.Abs(float64(fwd-rev)) > 1e-5 {
			t.Errorf("x=%v: forward %v, mirrored %v", x, fwd, rev)
		}
	}
}

func TestCubicInterpolate_ZeroAllocs(t *testing.T) {
	var sink float32
	allocs := testing.AllocsPerRun(100, func() {
		sink += CubicInterpolate(0, 1, 0.5, 0.25, 0.3)
	})
	if allocs != 0 {
		t.Errorf("CubicInterpolate allocated %v times, want 0", allocs)
	}
	_ = sink
}

func BenchmarkCubicInterpolate(b *testing.B) {
	var sink float32

	b.ReportAllocs()

	for b.Loop() {
		sink = CubicInterpolate(0.1, 0.5, 0.9, 0.3, 0.42)
	}
	_ = sink
}
