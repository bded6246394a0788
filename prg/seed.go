//
// seed.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package prg

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Seed implements a 128 bit PRG seed.
type Seed struct {
	D0 uint64
	D1 uint64
}

// SeedData contains seed data as byte array.
type SeedData [16]byte

func (s Seed) String() string {
	return fmt.Sprintf("%016x%016x", s.D0, s.D1)
}

// Equal tests if the seeds are equal.
func (s Seed) Equal(o Seed) bool {
	return s.D0 == o.D0 && s.D1 == o.D1
}

// NewSeed creates a new random seed.
func NewSeed(rand io.Reader) (Seed, error) {
	var buf SeedData
	var seed Seed

	if _, err := rand.Read(buf[:]); err != nil {
		return seed, err
	}
	seed.SetData(&buf)
	return seed, nil
}

// Xor xors the seed with the argument seed.
func (s *Seed) Xor(o Seed) {
	s.D0 ^= o.D0
	s.D1 ^= o.D1
}

// GetData gets the seed as seed data.
func (s Seed) GetData(buf *SeedData) {
	binary.BigEndian.PutUint64(buf[0:8], s.D0)
	binary.BigEndian.PutUint64(buf[8:16], s.D1)
}

// SetData sets the seed from seed data.
func (s *Seed) SetData(data *SeedData) {
	s.D0 = binary.BigEndian.Uint64((*data)[0:8])
	s.D1 = binary.BigEndian.Uint64((*data)[8:16])
}

// Bytes returns the seed data as bytes.
func (s Seed) Bytes(buf *SeedData) []byte {
	s.GetData(buf)
	return buf[:]
}

// SetBytes sets the seed data from bytes.
func (s *Seed) SetBytes(data []byte) {
	s.D0 = binary.BigEndian.Uint64(data[0:8])
	s.D1 = binary.BigEndian.Uint64(data[8:16])
}
