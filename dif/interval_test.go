//
// interval_test.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package dif

import (
	"crypto/rand"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/markkurossi/fss/prg"
)

func TestIntervalReconstruction(t *testing.T) {
	arith := testArith(t)
	s := New[*big.Int](arith, prg.AESCTR)

	const logDomain = 3
	const domain = 1 << logDomain

	for lo := uint64(0); lo < domain; lo++ {
		for hi := lo; hi < domain; hi++ {
			k0, k1, err := s.GenInterval(rand.Reader, logDomain, lo, hi,
				arith.One())
			require.NoError(t, err)

			for x := uint64(0); x < domain; x++ {
				s0, err := s.EvalInterval(k0, x)
				require.NoError(t, err)
				s1, err := s.EvalInterval(k1, x)
				require.NoError(t, err)

				expected := arith.Zero()
				if lo <= x && x <= hi {
					expected = arith.One()
				}
				got := arith.Add(s0, s1)
				require.True(t, arith.Equal(got, expected),
					"[%d,%d], x=%d: got %v, expected %v",
					lo, hi, x, got, expected)
			}
		}
	}
}

func TestIntervalFullDomain(t *testing.T) {
	arith := testArith(t)
	s := New[*big.Int](arith, prg.ChaCha20)

	// The interval covering the whole domain, including the top
	// point, must not overflow the alpha encoding.
	const logDomain = 4
	k0, k1, err := s.GenInterval(rand.Reader, logDomain, 0, 15, arith.One())
	require.NoError(t, err)

	for x := uint64(0); x < 1<<logDomain; x++ {
		s0, err := s.EvalInterval(k0, x)
		require.NoError(t, err)
		s1, err := s.EvalInterval(k1, x)
		require.NoError(t, err)
		require.True(t, arith.Equal(arith.Add(s0, s1), arith.One()),
			"x=%d not inside full-domain interval", x)
	}
}

func TestIntervalErrors(t *testing.T) {
	arith := testArith(t)
	s := New[*big.Int](arith, prg.AESCTR)

	_, _, err := s.GenInterval(rand.Reader, 4, 9, 3, arith.One())
	require.Error(t, err, "empty interval")

	_, _, err = s.GenInterval(rand.Reader, 4, 0, 16, arith.One())
	require.ErrorIs(t, err, ErrInvalidInput)

	k0, k1, err := s.GenInterval(rand.Reader, 4, 2, 5, arith.One())
	require.NoError(t, err)

	_, err = s.EvalInterval(k0, 16)
	require.ErrorIs(t, err, ErrInvalidInput)

	// Components from different parties do not form a key.
	bad := &IntervalKey[*big.Int]{Lo: k0.Lo, Hi: k1.Hi}
	_, err = s.EvalInterval(bad, 0)
	require.ErrorIs(t, err, ErrMalformedKey)

	truncated := *k0.Hi
	truncated.CodeWords = truncated.CodeWords[:2]
	bad = &IntervalKey[*big.Int]{Lo: k0.Lo, Hi: &truncated}
	_, err = s.EvalInterval(bad, 0)
	require.ErrorIs(t, err, ErrMalformedKey)
}
