// SPDX-License-Identifier: EPL-2.0

// Package command carries control-side requests to realtime generators.
//
// Values travel through a Mailbox: the control side calls Post and the
// realtime side calls Drain at the start of each cycle. The realtime path
// never blocks or allocates; a full ring spills into a control-side backlog
// that Flush feeds back in order.
//
//	mb := command.NewMailbox[command.Crossfade](16)
//	mb.Post(command.NewCrossfade(1, 2, command.EqualPower))
//	// audio callback
//	mb.Drain(func(c command.Crossfade) { apply(c) })
package command
