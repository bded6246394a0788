//
// dif.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package dif implements two-party function secret sharing for
// distributed interval functions, following the Boyle-Gilboa-Ishai
// construction. The dealer splits an interval indicator function into
// two succinct keys; each party evaluates its key on a public input
// and obtains an additive share of the function value. Evaluation
// walks a GGM tree: at every level the current seed is expanded with
// a PRG into masked values for both children, and the level's
// codeword corrects the selected child into valid scheme state.
package dif

import (
	"errors"

	"github.com/markkurossi/fss/fp"
	"github.com/markkurossi/fss/prg"
)

var (
	// ErrMalformedKey means the key's structure is inconsistent.
	ErrMalformedKey = errors.New("dif: malformed key")

	// ErrInvalidInput means the input does not fit the key's domain.
	ErrInvalidInput = errors.New("dif: input outside domain")
)

// MaxLogDomain is the largest supported input domain bit length.
const MaxLogDomain = 63

// Scheme binds the field arithmetic and the PRG algorithm for one
// scheme instance. The dealer and both parties must use identical
// bindings or key generation and evaluation disagree.
type Scheme[E any] struct {
	arith fp.Arith[E]
	prg   prg.Func
}

// New creates a scheme instance with the field arithmetic arith and
// the PRG algorithm prgf.
func New[E any](arith fp.Arith[E], prgf prg.Func) *Scheme[E] {
	return &Scheme[E]{
		arith: arith,
		prg:   prgf,
	}
}
