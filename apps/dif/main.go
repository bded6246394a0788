//
// main.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Command dif generates a key pair for a secret interval, evaluates
// both keys over the whole input domain, and prints the shares and
// their reconstruction.
package main

import (
	"crypto/rand"
	"flag"
	"fmt"
	"log"
	"math/big"
	"os"

	"github.com/markkurossi/fss/dif"
	"github.com/markkurossi/fss/fp"
	"github.com/markkurossi/fss/prg"
	"github.com/markkurossi/tabulate"
	"github.com/markkurossi/text/superscript"
)

func main() {
	bits := flag.Int("bits", 4, "Input domain bit length")
	lo := flag.Uint64("lo", 3, "Interval low bound")
	hi := flag.Uint64("hi", 9, "Interval high bound")
	modulus := flag.String("modulus", "65521", "Prime field modulus")
	chacha := flag.Bool("chacha20", false, "Use the ChaCha20 PRG")
	flag.Parse()

	p, ok := new(big.Int).SetString(*modulus, 10)
	if !ok {
		log.Fatalf("invalid modulus: %s", *modulus)
	}
	arith, err := fp.NewModular(p)
	if err != nil {
		log.Fatal(err)
	}

	prgf := prg.Func(prg.AESCTR)
	if *chacha {
		prgf = prg.ChaCha20
	}
	scheme := dif.New[*big.Int](arith, prgf)

	k0, k1, err := scheme.GenInterval(rand.Reader, *bits, *lo, *hi,
		arith.One())
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("f(x) = [%d <= x <= %d] over GF(%s), %d bit domain\n",
		*lo, *hi, p, *bits)

	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header("x").SetAlign(tabulate.MR)
	tab.Header("share" + superscript.Itoa(0)).SetAlign(tabulate.MR)
	tab.Header("share" + superscript.Itoa(1)).SetAlign(tabulate.MR)
	tab.Header("f(x)").SetAlign(tabulate.MR)

	for x := uint64(0); x < 1<<uint(*bits); x++ {
		s0, err := scheme.EvalInterval(k0, x)
		if err != nil {
			log.Fatal(err)
		}
		s1, err := scheme.EvalInterval(k1, x)
		if err != nil {
			log.Fatal(err)
		}

		row := tab.Row()
		row.Column(fmt.Sprintf("%d", x))
		row.Column(s0.String())
		row.Column(s1.String())
		row.Column(arith.Add(s0, s1).String())
	}
	tab.Print(os.Stdout)
}
