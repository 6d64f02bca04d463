// Copyright (c) 2016, Christopher Patton. All rights reserved.
//
// Redistribution and use in source and binary forms, with or without
// modification, are permitted provided that the following conditions are met:
//
// 1. Redistributions of source code must retain the above copyright notice,
// this list of conditions and the following disclaimer.
//
// 2. Redistributions in binary form must reproduce the above copyright notice,
// this list of conditions and the following disclaimer in the documentation
// and/or other materials provided with the distribution.
//
// 3. Neither the name of the copyright holder nor the names of its contributors
// may be used to endorse or promote products derived from this software without
// specific prior written permission.
//
// THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
// AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
// IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE
// ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE
// LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR
// CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF
// SUBSTITUTE GOODS OR SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS
// INTERRUPTION) HOWEVER CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN
// CONTRACT, STRICT LIABILITY, OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE)
// ARISING IN ANY WAY OUT OF THE USE OF THIS SOFTWARE, EVEN IF ADVISED OF THE
// POSSIBILITY OF SUCH DAMAGE.

// Extended ElGamal: universal re-encryption and a commutative, set-oriented
// encryption mode, after Weis (MIT thesis, 2005, chapter 5). Ciphertexts
// can be re-randomized and reordered by any party without the private key;
// decryption by a key peels one layer and returns a still-commutatively
// encrypted multiset.
package mentalpoker

import (
	"fmt"
	"math/big"
)

// pair is a raw two-component ElGamal tuple. The slot order is NOT
// (c1, c2) in the usual sense for every pair stored in a CommutativeElement
// -- see the layout note on CommutativeElement.
type pair struct {
	A, B *big.Int
}

// CommutativeElement is one entry of a commutative ciphertext set: a
// nested pair of pairs. Plain carries the message under re-randomizable
// ElGamal; Blind carries a parallel encryption of the constant 1 used as
// the blinding handle for universal re-encryption (§4.4.1).
//
// Layout quirk (spec note, preserved bit-for-bit for wire compatibility):
// building the integer case swaps each pair's natural (c1, c2) order
// before nesting, so Plain.A/Blind.A hold what Encrypt returns as c2 and
// Plain.B/Blind.B hold what Encrypt returns as c1. The arithmetic is
// insensitive to this swap as long as slot 0 always multiplies with slot 0
// and slot 1 with slot 1, which every operation below preserves. Do not
// "fix" this ordering without bumping a protocol version.
type CommutativeElement struct {
	Plain pair
	Blind pair
}

// CommutativeSet is an unordered multiset of commutative-encrypted
// elements. Each encryption layer contributes one element, so a set of
// length L carries L layers: every element is encrypted under one layer's
// key, its Blind pair is that key's marker-of-1, and the product of all
// Plain plaintexts is the message. Order is not meaningful and every
// operation below re-shuffles before returning.
type CommutativeSet []CommutativeElement

// CommutativeEncrypt dispatches on the runtime shape of input, matching
// the source's dynamic type inspection (spec §9): a *big.Int starts a
// fresh layer over an integer message; a CommutativeSet adds one more
// encryption layer over an existing ciphertext.
func (pk *EGPublicKey) CommutativeEncrypt(input any) (CommutativeSet, error) {
	switch v := input.(type) {
	case *big.Int:
		return pk.commutativeEncryptInt(v)
	case CommutativeSet:
		return pk.commutativeEncryptSet(v)
	default:
		return nil, fmt.Errorf("%w: unsupported commutative_encrypt input type %T", ErrInvalidMessage, input)
	}
}

// CommutativeEncrypt encrypts under the key's own public half.
func (sk *EGPrivateKey) CommutativeEncrypt(input any) (CommutativeSet, error) {
	return sk.Pub.CommutativeEncrypt(input)
}

func (pk *EGPublicKey) commutativeEncryptInt(m *big.Int) (CommutativeSet, error) {
	c1, c2, err := pk.Encrypt(m)
	if err != nil {
		return nil, err
	}
	c3, c4, err := pk.Encrypt(one)
	if err != nil {
		return nil, err
	}
	return CommutativeSet{{
		Plain: pair{A: c2, B: c1},
		Blind: pair{A: c4, B: c3},
	}}, nil
}

func (pk *EGPublicKey) commutativeEncryptSet(input CommutativeSet) (CommutativeSet, error) {
	l := len(input)
	rs := make([]*big.Int, l)
	for i := range rs {
		r, err := pk.Sample()
		if err != nil {
			return nil, err
		}
		rs[i] = r
	}
	rLast, err := ModInverse(ProductMod(rs, pk.P), pk.P)
	if err != nil {
		return nil, err
	}
	cs, err := pk.commutativeEncryptInt(rLast)
	if err != nil {
		return nil, err
	}
	for i := 0; i < l; i++ {
		tweaked := tweakPlain(input[i], rs[i], pk.P)
		reenc, err := pk.universalReencrypt(tweaked)
		if err != nil {
			return nil, err
		}
		cs = append(cs, reenc)
	}
	if err := Shuffle(len(cs), func(i, j int) { cs[i], cs[j] = cs[j], cs[i] }); err != nil {
		return nil, err
	}
	return cs, nil
}

// tweakPlain multiplies an element's plain pair's first slot by r mod p,
// the plaintext-homomorphic tweak that lets the caller fold a scalar into
// the element's encrypted message ahead of re-randomization.
func tweakPlain(e CommutativeElement, r, p *big.Int) CommutativeElement {
	a := new(big.Int).Mul(e.Plain.A, r)
	a.Mod(a, p)
	return CommutativeElement{Plain: pair{A: a, B: e.Plain.B}, Blind: e.Blind}
}

// universalReencrypt re-randomizes one commutative element without
// requiring the private key (§4.4.1).
func (pk *EGPublicKey) universalReencrypt(e CommutativeElement) (CommutativeElement, error) {
	t, err := pk.Sample()
	if err != nil {
		return CommutativeElement{}, err
	}
	u, err := pk.Sample()
	if err != nil {
		return CommutativeElement{}, err
	}
	blindAT := new(big.Int).Exp(e.Blind.A, t, pk.P)
	blindBT := new(big.Int).Exp(e.Blind.B, t, pk.P)
	plainA := new(big.Int).Mul(e.Plain.A, blindAT)
	plainA.Mod(plainA, pk.P)
	plainB := new(big.Int).Mul(e.Plain.B, blindBT)
	plainB.Mod(plainB, pk.P)

	blindA := new(big.Int).Exp(e.Blind.A, u, pk.P)
	blindB := new(big.Int).Exp(e.Blind.B, u, pk.P)
	return CommutativeElement{
		Plain: pair{A: plainA, B: plainB},
		Blind: pair{A: blindA, B: blindB},
	}, nil
}

// decryptPair recovers m = slotA * (slotB^alpha)^-1 mod P for a raw pair.
func (sk *EGPrivateKey) decryptPair(p pair) (*big.Int, error) {
	s := new(big.Int).Exp(p.B, sk.Alpha, sk.Pub.P)
	sInv, err := ModInverse(s, sk.Pub.P)
	if err != nil {
		return nil, err
	}
	m := new(big.Int).Mul(p.A, sInv)
	m.Mod(m, sk.Pub.P)
	return m, nil
}

// isOneUnderKey decrypts a pair and reports whether it holds the constant 1.
func (sk *EGPrivateKey) isOneUnderKey(p pair) (bool, error) {
	v, err := sk.decryptPair(p)
	if err != nil {
		return false, err
	}
	return v.Cmp(one) == 0, nil
}

// CommutativeDecrypt peels one encryption layer from a commutative
// ciphertext set. If the set has more than one element, it returns the
// resulting CommutativeSet of length L-1. If the set has exactly one
// element (the key's own marker-of-1), it returns the recovered *big.Int
// plaintext. It returns ErrKeyDoesNotMatchCiphertext if no element's
// blinding pair decrypts to 1 under this key.
func (sk *EGPrivateKey) CommutativeDecrypt(set CommutativeSet) (any, error) {
	l := len(set)
	if l == 0 {
		return nil, ErrKeyDoesNotMatchCiphertext
	}
	if l == 1 {
		ok, err := sk.isOneUnderKey(set[0].Blind)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrKeyDoesNotMatchCiphertext
		}
		return sk.decryptPair(set[0].Plain)
	}

	var result CommutativeSet
	matched := false
	for j := 0; j < l; j++ {
		ok, err := sk.isOneUnderKey(set[j].Blind)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		matched = true

		val, err := sk.decryptPair(set[j].Plain)
		if err != nil {
			return nil, err
		}

		scalars := make([]*big.Int, l)
		if l > 2 {
			sampled := make([]*big.Int, l-2)
			for i := range sampled {
				r, err := sk.Pub.Sample()
				if err != nil {
					return nil, err
				}
				sampled[i] = r
			}
			last, err := ModInverse(ProductMod(sampled, sk.Pub.P), sk.Pub.P)
			if err != nil {
				return nil, err
			}
			last.Mul(last, val)
			last.Mod(last, sk.Pub.P)
			idx := 0
			for i := 0; i < l; i++ {
				if i == j {
					continue
				}
				if idx < len(sampled) {
					scalars[i] = sampled[idx]
					idx++
				} else {
					scalars[i] = last
				}
			}
		} else {
			// l == 2: the single remaining element carries val directly.
			for i := 0; i < l; i++ {
				if i != j {
					scalars[i] = val
				}
			}
		}

		for i := 0; i < l; i++ {
			if i == j {
				continue
			}
			tweaked := tweakPlain(set[i], scalars[i], sk.Pub.P)
			reenc, err := sk.Pub.universalReencrypt(tweaked)
			if err != nil {
				return nil, err
			}
			result = append(result, reenc)
		}
	}
	if !matched {
		return nil, ErrKeyDoesNotMatchCiphertext
	}
	if err := Shuffle(len(result), func(i, j int) { result[i], result[j] = result[j], result[i] }); err != nil {
		return nil, err
	}
	return result, nil
}

// ThreePassReencrypt implements the prover side of the ElGamal variant of
// Shamir's no-key (three-pass) protocol: it shifts a ciphertext from this
// key's regime to a neighbour's public key, re-randomizing with a fresh k.
func (sk *EGPrivateKey) ThreePassReencrypt(c1, c2, neighborBeta *big.Int) (z1, z2 *big.Int, err error) {
	k, err := sk.Pub.Sample()
	if err != nil {
		return nil, nil, err
	}
	gk := new(big.Int).Exp(sk.Pub.G, k, sk.Pub.P)
	z1 = new(big.Int).Mul(c1, gk)
	z1.Mod(z1, sk.Pub.P)

	z1Alpha := new(big.Int).Exp(z1, sk.Alpha, sk.Pub.P)
	betaK := new(big.Int).Exp(neighborBeta, k, sk.Pub.P)
	z2 = new(big.Int).Mul(z1Alpha, betaK)
	z2.Mul(z2, c2)
	z2.Mod(z2, sk.Pub.P)
	return z1, z2, nil
}

// ThreePassRedecrypt implements the corresponding re-decryption step,
// removing this key's layer while shifting the randomness.
func (sk *EGPrivateKey) ThreePassRedecrypt(c1, c2, neighborBeta *big.Int) (z1, z2 *big.Int, err error) {
	k, err := sk.Pub.Sample()
	if err != nil {
		return nil, nil, err
	}
	gk := new(big.Int).Exp(sk.Pub.G, k, sk.Pub.P)
	z1 = new(big.Int).Mul(c1, gk)
	z1.Mod(z1, sk.Pub.P)

	c1Alpha := new(big.Int).Exp(c1, sk.Alpha, sk.Pub.P)
	c1AlphaInv, err := ModInverse(c1Alpha, sk.Pub.P)
	if err != nil {
		return nil, nil, err
	}
	betaK := new(big.Int).Exp(neighborBeta, k, sk.Pub.P)
	z2 = new(big.Int).Mul(c1AlphaInv, betaK)
	z2.Mul(z2, c2)
	z2.Mod(z2, sk.Pub.P)
	return z1, z2, nil
}
