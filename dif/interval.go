//
// interval.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package dif

import (
	"fmt"
	"io"
)

// IntervalKey is the per-party key for a closed interval [lo, hi]:
// Hi reconstructs beta*[x <= hi] and Lo reconstructs beta*[x < lo];
// the interval share is their difference.
type IntervalKey[E any] struct {
	Lo *Key[E]
	Hi *Key[E]
}

// Validate checks both component keys.
func (k *IntervalKey[E]) Validate() error {
	if err := k.Lo.Validate(); err != nil {
		return err
	}
	if err := k.Hi.Validate(); err != nil {
		return err
	}
	if k.Lo.LogDomain != k.Hi.LogDomain || k.Lo.Party != k.Hi.Party {
		return fmt.Errorf("%w: mismatched interval component keys",
			ErrMalformedKey)
	}
	return nil
}

// GenInterval generates a key pair whose shares reconstruct to
// beta*[lo <= x <= hi].
func (s *Scheme[E]) GenInterval(rand io.Reader, logDomain int, lo, hi uint64,
	beta E) (*IntervalKey[E], *IntervalKey[E], error) {

	if lo > hi {
		return nil, nil, fmt.Errorf("dif: empty interval [%d, %d]", lo, hi)
	}
	if hi>>uint(logDomain) != 0 {
		return nil, nil, fmt.Errorf("%w: %d does not fit in %d bits",
			ErrInvalidInput, hi, logDomain)
	}

	// beta*[x <= hi] == beta*[x < hi] + beta*[x == hi]: the combined
	// form stays inside the domain also for hi == 2^logDomain-1.
	hi0, hi1, err := s.gen(rand, logDomain, hi, beta, beta)
	if err != nil {
		return nil, nil, err
	}
	lo0, lo1, err := s.GenLess(rand, logDomain, lo, beta)
	if err != nil {
		return nil, nil, err
	}
	k0 := &IntervalKey[E]{Lo: lo0, Hi: hi0}
	k1 := &IntervalKey[E]{Lo: lo1, Hi: hi1}
	return k0, k1, nil
}

// EvalInterval computes the party's additive share of
// beta*[lo <= x <= hi].
func (s *Scheme[E]) EvalInterval(key *IntervalKey[E], x uint64) (E, error) {
	var zero E

	if err := key.Validate(); err != nil {
		return zero, err
	}
	hi, err := s.Eval(key.Hi, x)
	if err != nil {
		return zero, err
	}
	lo, err := s.Eval(key.Lo, x)
	if err != nil {
		return zero, err
	}
	return s.arith.Sub(hi, lo), nil
}
