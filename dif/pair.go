//
// pair.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package dif

// Pair is a fixed two-slot container indexed by a boolean: slot 0
// holds the value for child/selector 0 and slot 1 the value for
// child/selector 1. The slots are never reordered.
type Pair[T any] [2]T

// bitIndex converts a selector bit into a slot index without a
// data-dependent branch.
func bitIndex(bit bool) int {
	var idx int
	if bit {
		idx = 1
	}
	return idx
}

// At returns the slot selected by bit.
func (p *Pair[T]) At(bit bool) T {
	return p[bitIndex(bit)]
}

// SetAt sets the slot selected by bit.
func (p *Pair[T]) SetAt(bit bool, v T) {
	p[bitIndex(bit)] = v
}
