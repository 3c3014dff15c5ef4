// SPDX-License-Identifier: EPL-2.0

// Package clip plays a decoded PCM clip as a generator node.
//
// A clip with a sample rate different from the output is resampled with the
// configured kernel unless ResampleMode is Off, in which case the generator
// reports zero frames so a parent mixer treats it as exhausted. A clip that
// could not be loaded stays Invalid and produces full blocks of silence.
//
// At non-looping clip edges the four-point kernel reads the first or last
// frame in place of the missing neighbours.
package clip
