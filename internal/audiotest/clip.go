// SPDX-License-Identifier: EPL-2.0

package audiotest

// Ramp returns frames x channels interleaved samples where the sample at
// frame f, channel c is f + c/10.
func Ramp(frames, channels int) []float32 {
	out := make([]float32, frames*channels)
	for f := range frames {
		for ch := range channels {
			out[f*channels+ch] = float32(f) + float32(ch)/10
		}
	}

	return out
}

// Constant returns n samples all set to value.
func Constant(n int, value float32) []float32 {
	out := make([]float32, n)
	for i := range out {
		out[i] = value
	}

	return out
}

// Fill sets every sample of dst to value.
func Fill(dst []float32, value float32) {
	for i := range dst {
		dst[i] = value
	}
}
