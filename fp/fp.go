//
// fp.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package fp defines the finite field capability interface the FSS
// evaluation needs from its scalar type, and implements it for prime
// modulus arithmetic over math/big integers.
package fp

import (
	"errors"
	"io"
	"math/big"
)

// ErrModulus means the modulus is nil, zero, or one.
var ErrModulus = errors.New("fp: invalid modulus")

// Arith defines field arithmetic over the element type E. All
// operations treat elements as immutable values: results are always
// fresh elements and arguments are never modified.
type Arith[E any] interface {
	// Zero returns the additive identity.
	Zero() E

	// One returns the multiplicative identity.
	One() E

	// Add returns x+y.
	Add(x, y E) E

	// Sub returns x-y.
	Sub(x, y E) E

	// Neg returns -x.
	Neg(x E) E

	// Equal tests if the elements are equal.
	Equal(x, y E) bool

	// Rand samples an element from the reader's output stream. The
	// sample is a deterministic function of the bytes read and every
	// call consumes the same number of bytes.
	Rand(r io.Reader) (E, error)
}

// Modular implements Arith over the integers modulo an odd prime.
type Modular struct {
	p         *big.Int
	numSample int
}

// NewModular creates modular arithmetic for the prime modulus p.
func NewModular(p *big.Int) (*Modular, error) {
	if p == nil || p.Cmp(big.NewInt(2)) < 0 {
		return nil, ErrModulus
	}
	// 16 extra bytes keep the mod-p reduction bias negligible.
	return &Modular{
		p:         new(big.Int).Set(p),
		numSample: (p.BitLen()+7)/8 + 16,
	}, nil
}

// Modulus returns the modulus.
func (m *Modular) Modulus() *big.Int {
	return new(big.Int).Set(m.p)
}

// Zero returns the additive identity.
func (m *Modular) Zero() *big.Int {
	return new(big.Int)
}

// One returns the multiplicative identity.
func (m *Modular) One() *big.Int {
	return big.NewInt(1)
}

// Add returns x+y mod p.
func (m *Modular) Add(x, y *big.Int) *big.Int {
	z := new(big.Int).Add(x, y)
	return z.Mod(z, m.p)
}

// Sub returns x-y mod p.
func (m *Modular) Sub(x, y *big.Int) *big.Int {
	z := new(big.Int).Sub(x, y)
	return z.Mod(z, m.p)
}

// Neg returns -x mod p.
func (m *Modular) Neg(x *big.Int) *big.Int {
	z := new(big.Int).Neg(x)
	return z.Mod(z, m.p)
}

// Equal tests if the elements are equal.
func (m *Modular) Equal(x, y *big.Int) bool {
	return x.Cmp(y) == 0
}

// Rand samples an element by reading a fixed number of bytes from r
// and reducing them modulo p.
func (m *Modular) Rand(r io.Reader) (*big.Int, error) {
	buf := make([]byte, m.numSample)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, err
	}
	z := new(big.Int).SetBytes(buf)
	return z.Mod(z, m.p), nil
}

// Element creates a field element from the unsigned value x.
func (m *Modular) Element(x uint64) *big.Int {
	z := new(big.Int).SetUint64(x)
	return z.Mod(z, m.p)
}
