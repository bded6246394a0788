//
// node.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package dif

import (
	"fmt"

	"github.com/markkurossi/fss/prg"
)

// Node is a node in the DIF tree: a seed, a control bit, and a field
// element for each of the two child positions.
type Node[E any] struct {
	Seeds       Pair[prg.Seed]
	ControlBits Pair[bool]
	Elems       Pair[E]
}

// CodeWord has the same structure as a Node but holds the dealer's
// per-level correction values, not live tree state. A masked node is
// corrected by XORing seeds and control bits with the codeword and
// adding its field elements.
type CodeWord[E any] = Node[E]

// Key is the succinct per-party representation of the shared
// function.
//
// CodeWords holds one pair of codewords per tree level; the codeword
// applied at a level is selected by the evaluation path's current
// control bit. The slice is shared between the two keys of a pair
// and is read-only after key generation.
//
// Root holds the party's starting seed and control bit in the slot
// selected by Party, and the pair of terminal output corrections in
// Elems, indexed by the final control bit of the walk.
type Key[E any] struct {
	LogDomain int
	Party     uint8
	Root      Node[E]
	CodeWords []Pair[CodeWord[E]]
}

// Validate checks the key's structural invariants. Evaluation must
// not proceed on a key that fails validation.
func (k *Key[E]) Validate() error {
	if k.LogDomain < 1 || k.LogDomain > MaxLogDomain {
		return fmt.Errorf("%w: log domain %d", ErrMalformedKey, k.LogDomain)
	}
	if len(k.CodeWords) != k.LogDomain {
		return fmt.Errorf("%w: %d codeword levels for depth %d",
			ErrMalformedKey, len(k.CodeWords), k.LogDomain)
	}
	if k.Party > 1 {
		return fmt.Errorf("%w: party %d", ErrMalformedKey, k.Party)
	}
	return nil
}
