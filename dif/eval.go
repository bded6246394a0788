//
// eval.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package dif

import (
	"fmt"
)

// Eval computes the party's additive share of f(x). The walk runs
// exactly key.LogDomain PRG expansions regardless of the value of x:
// every level expands both children and selects afterwards, so the
// work done is independent of the secret bits.
func (s *Scheme[E]) Eval(key *Key[E], x uint64) (E, error) {
	var zero E

	if err := key.Validate(); err != nil {
		return zero, err
	}
	if x>>uint(key.LogDomain) != 0 {
		return zero, fmt.Errorf("%w: %d does not fit in %d bits",
			ErrInvalidInput, x, key.LogDomain)
	}

	node := newIntermediate(key.Party == 1, &key.Root)
	acc := s.arith.Zero()

	for i := 0; i < key.LogDomain; i++ {
		// Most-significant bit first.
		bit := x>>uint(key.LogDomain-1-i)&1 == 1

		masked, err := s.sampleMaskedNode(node)
		if err != nil {
			return zero, err
		}

		// The codeword is selected by the path's current control
		// bit, not by the input bit.
		codeword := key.CodeWords[i].At(node.controlBit)
		node = s.unmaskNode(bit, &masked, &codeword, &acc)
	}

	// Terminal output correction, selected by the final control bit.
	acc = s.arith.Add(acc, key.Root.Elems.At(node.controlBit))

	// Party 1 negates its share so that reconstruction is plain
	// field addition.
	if key.Party == 1 {
		acc = s.arith.Neg(acc)
	}
	return acc, nil
}
