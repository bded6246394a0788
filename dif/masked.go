//
// masked.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package dif

import (
	"io"

	"github.com/markkurossi/fss/prg"
)

// maskedNode is the raw PRG expansion of one seed into candidate
// values for both children, before codeword correction. It lives for
// one level of one evaluation.
type maskedNode[E any] struct {
	seeds Pair[prg.Seed]
	bits  Pair[bool]
	elems Pair[E]
}

// intermediateNode is the selected child's state on the evaluation
// path: the seed feeding the next level's expansion and the control
// bit selecting the next level's codeword.
type intermediateNode struct {
	seed       prg.Seed
	controlBit bool
}

// newIntermediate projects the child at bit from node.
func newIntermediate[E any](bit bool, node *Node[E]) intermediateNode {
	return intermediateNode{
		seed:       node.Seeds.At(bit),
		controlBit: node.ControlBits.At(bit),
	}
}

// sampleMaskedNode expands node's seed into a masked node. The
// keystream is consumed in protocol order: seed 0, seed 1, bit 0,
// bit 1, element 0, element 1. Key generation and evaluation must
// agree on this order bit-for-bit.
func (s *Scheme[E]) sampleMaskedNode(node intermediateNode) (
	maskedNode[E], error) {

	stream := s.prg(node.seed)

	var m maskedNode[E]
	var buf prg.SeedData

	for i := 0; i < 2; i++ {
		if _, err := io.ReadFull(stream, buf[:]); err != nil {
			return m, err
		}
		m.seeds[i].SetData(&buf)
	}

	var bits [2]byte
	if _, err := io.ReadFull(stream, bits[:]); err != nil {
		return m, err
	}
	m.bits[0] = bits[0]&1 == 1
	m.bits[1] = bits[1]&1 == 1

	for i := 0; i < 2; i++ {
		elem, err := s.arith.Rand(stream)
		if err != nil {
			return m, err
		}
		m.elems[i] = elem
	}
	return m, nil
}

// unmaskNode corrects the masked node at bit with the codeword:
// seeds and control bits are XORed, and if acc is non-nil the masked
// and codeword field elements are added into it. The corrected child
// state becomes the next level's intermediate node.
func (s *Scheme[E]) unmaskNode(bit bool, m *maskedNode[E],
	codeword *CodeWord[E], acc *E) intermediateNode {

	seed := m.seeds.At(bit)
	seed.Xor(codeword.Seeds.At(bit))

	controlBit := m.bits.At(bit) != codeword.ControlBits.At(bit)

	if acc != nil {
		*acc = s.arith.Add(*acc,
			s.arith.Add(m.elems.At(bit), codeword.Elems.At(bit)))
	}
	return intermediateNode{
		seed:       seed,
		controlBit: controlBit,
	}
}
