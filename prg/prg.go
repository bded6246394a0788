//
// prg.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package prg implements deterministic pseudo-random generators keyed
// by 128 bit seeds. The generators are exposed as io.Reader keystreams
// so that callers can consume seed material, bits, and field elements
// from one stream in a fixed order.
package prg

import (
	"crypto/aes"
	"crypto/cipher"

	"golang.org/x/crypto/chacha20"
)

// Func creates a keystream reader for the seed. It binds the PRG
// algorithm choice for a scheme instance: key generation and
// evaluation must use the same Func or their expansions disagree.
type Func func(seed Seed) Stream

// Stream is a deterministic keystream. Read never fails and always
// fills the whole buffer.
type Stream interface {
	Read(p []byte) (int, error)
}

type ctrStream struct {
	stream cipher.Stream
}

func (s *ctrStream) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = 0
	}
	s.stream.XORKeyStream(p, p)
	return len(p), nil
}

// AESCTR creates an AES-128-CTR keystream keyed by seed. The IV is
// zero; callers must ensure domain separation via unique seeds.
func AESCTR(seed Seed) Stream {
	var key SeedData
	seed.GetData(&key)

	block, err := aes.NewCipher(key[:])
	if err != nil {
		panic(err)
	}

	var iv [16]byte
	return &ctrStream{
		stream: cipher.NewCTR(block, iv[:]),
	}
}

// ChaCha20 creates a ChaCha20 keystream keyed by seed. The 16 byte
// seed is repeated to fill the 32 byte key; the nonce is zero.
func ChaCha20(seed Seed) Stream {
	var data SeedData
	seed.GetData(&data)

	key := make([]byte, 32)
	for i := 0; i < 32; i++ {
		key[i] = data[i%len(data)]
	}
	nonce := make([]byte, 12)

	c, err := chacha20.NewUnauthenticatedCipher(key, nonce)
	if err != nil {
		panic(err)
	}
	return &ctrStream{
		stream: c,
	}
}
