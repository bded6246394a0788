//
// gen.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package dif

import (
	"fmt"
	"io"

	"github.com/markkurossi/fss/prg"
)

// GenLess generates a key pair whose shares reconstruct to
// beta*[x < alpha].
func (s *Scheme[E]) GenLess(rand io.Reader, logDomain int, alpha uint64,
	beta E) (*Key[E], *Key[E], error) {
	return s.gen(rand, logDomain, alpha, beta, s.arith.Zero())
}

// GenPoint generates a key pair whose shares reconstruct to
// beta*[x == alpha].
func (s *Scheme[E]) GenPoint(rand io.Reader, logDomain int, alpha uint64,
	beta E) (*Key[E], *Key[E], error) {
	return s.gen(rand, logDomain, alpha, s.arith.Zero(), beta)
}

// gen produces a matched key pair for
//
//	f(x) = lt*[x < alpha] + eq*[x == alpha]
//
// over the scheme's field. Dealer randomness is drawn from rand; the
// keys themselves are deterministic functions of the PRG binding and
// the dealer randomness.
func (s *Scheme[E]) gen(rand io.Reader, logDomain int, alpha uint64,
	lt, eq E) (*Key[E], *Key[E], error) {

	if logDomain < 1 || logDomain > MaxLogDomain {
		return nil, nil, fmt.Errorf("dif: log domain %d out of range",
			logDomain)
	}
	if alpha>>uint(logDomain) != 0 {
		return nil, nil, fmt.Errorf("%w: %d does not fit in %d bits",
			ErrInvalidInput, alpha, logDomain)
	}

	// Root states: independent seeds, complementary control bits.
	var state [2]intermediateNode
	for p := 0; p < 2; p++ {
		seed, err := prg.NewSeed(rand)
		if err != nil {
			return nil, nil, err
		}
		state[p].seed = seed
	}
	bit, err := randBit(rand)
	if err != nil {
		return nil, nil, err
	}
	state[0].controlBit = bit
	state[1].controlBit = !bit

	root := state

	codewords := make([]Pair[CodeWord[E]], logDomain)

	for i := 0; i < logDomain; i++ {
		pathBit := alpha>>uint(logDomain-1-i)&1 == 1
		offBit := !pathBit

		var masked [2]maskedNode[E]
		for p := 0; p < 2; p++ {
			m, err := s.sampleMaskedNode(state[p])
			if err != nil {
				return nil, nil, err
			}
			masked[p] = m
		}

		// Party 0 applies a fully random codeword.
		applied0, err := s.randCodeWord(rand)
		if err != nil {
			return nil, nil, err
		}

		// Party 1's codeword is derived so that off the dealer's
		// path the corrected states collapse to equality, on the
		// path the seeds stay independent and the control bits
		// complementary.
		var applied1 CodeWord[E]

		offSeed := applied0.Seeds.At(offBit)
		offSeed.Xor(masked[0].seeds.At(offBit))
		offSeed.Xor(masked[1].seeds.At(offBit))
		applied1.Seeds.SetAt(offBit, offSeed)

		onSeed, err := prg.NewSeed(rand)
		if err != nil {
			return nil, nil, err
		}
		applied1.Seeds.SetAt(pathBit, onSeed)

		applied1.ControlBits.SetAt(offBit,
			applied0.ControlBits.At(offBit) !=
				masked[0].bits.At(offBit) != masked[1].bits.At(offBit))
		applied1.ControlBits.SetAt(pathBit,
			!(applied0.ControlBits.At(pathBit) !=
				masked[0].bits.At(pathBit) != masked[1].bits.At(pathBit)))

		// Divergence payload: leaving the path on the low side pays
		// lt, on the high side zero.
		payload := s.arith.Zero()
		if pathBit {
			payload = lt
		}
		applied1.Elems.SetAt(offBit, s.arith.Sub(
			s.arith.Add(applied0.Elems.At(offBit),
				masked[0].elems.At(offBit)),
			s.arith.Add(masked[1].elems.At(offBit), payload)))

		// On the path the parties' contributions cancel, except at
		// the last level where the full path pays the equality
		// payload. Only x == alpha reaches the last on-path child.
		onPayload := s.arith.Zero()
		if i == logDomain-1 {
			onPayload = eq
		}
		applied1.Elems.SetAt(pathBit, s.arith.Sub(
			s.arith.Add(applied0.Elems.At(pathBit),
				masked[0].elems.At(pathBit)),
			s.arith.Add(masked[1].elems.At(pathBit), onPayload)))

		// The pair slot each party reads is its current control bit.
		var level Pair[CodeWord[E]]
		level.SetAt(state[0].controlBit, applied0)
		level.SetAt(state[1].controlBit, applied1)
		codewords[i] = level

		// Advance the dealer's view of both parties' on-path state.
		state[0] = s.unmaskNode(pathBit, &masked[0], &applied0, nil)
		state[1] = s.unmaskNode(pathBit, &masked[1], &applied1, nil)
	}

	// Terminal corrections, indexed by the final control bit. Both
	// slots carry the same value so the terminal folds of the two
	// parties cancel under reconstruction for every final bit
	// combination. The payloads live in the codewords, blinded by
	// both parties' expansions.
	relem, err := s.arith.Rand(rand)
	if err != nil {
		return nil, nil, err
	}
	var elems Pair[E]
	elems[0] = relem
	elems[1] = relem

	var keys [2]*Key[E]
	for p := 0; p < 2; p++ {
		filler, err := prg.NewSeed(rand)
		if err != nil {
			return nil, nil, err
		}
		fillerBit, err := randBit(rand)
		if err != nil {
			return nil, nil, err
		}

		key := &Key[E]{
			LogDomain: logDomain,
			Party:     uint8(p),
			CodeWords: codewords,
		}
		party := p == 1
		key.Root.Seeds.SetAt(party, root[p].seed)
		key.Root.Seeds.SetAt(!party, filler)
		key.Root.ControlBits.SetAt(party, root[p].controlBit)
		key.Root.ControlBits.SetAt(!party, fillerBit)
		key.Root.Elems = elems

		keys[p] = key
	}
	return keys[0], keys[1], nil
}

// randCodeWord samples a codeword with every component random.
func (s *Scheme[E]) randCodeWord(rand io.Reader) (CodeWord[E], error) {
	var cw CodeWord[E]

	for i := 0; i < 2; i++ {
		seed, err := prg.NewSeed(rand)
		if err != nil {
			return cw, err
		}
		cw.Seeds[i] = seed

		bit, err := randBit(rand)
		if err != nil {
			return cw, err
		}
		cw.ControlBits[i] = bit

		elem, err := s.arith.Rand(rand)
		if err != nil {
			return cw, err
		}
		cw.Elems[i] = elem
	}
	return cw, nil
}

func randBit(rand io.Reader) (bool, error) {
	var buf [1]byte
	if _, err := io.ReadFull(rand, buf[:]); err != nil {
		return false, err
	}
	return buf[0]&1 == 1, nil
}
