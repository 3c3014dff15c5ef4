// SPDX-License-Identifier: EPL-2.0

package generator

import "errors"

var (
	// ErrGraphFull is returned by Add when every slot is taken.
	ErrGraphFull = errors.New("generator graph is full")

	// ErrStaleHandle is returned for zero handles and handles of destroyed nodes.
	ErrStaleHandle = errors.New("stale generator handle")

	// ErrClosed is returned by operations on a closed graph.
	ErrClosed = errors.New("generator graph is closed")

	// ErrNilNode is returned by Add for a nil node.
	ErrNilNode = errors.New("nil generator node")
)
