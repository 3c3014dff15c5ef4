// SPDX-License-Identifier: EPL-2.0

package command

// Frequency retunes a tone generator. Hz <= 0 is ignored by the receiver.
type Frequency struct {
	Hz float64
}
