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

package mentalpoker

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// ModInverse returns the multiplicative inverse of a modulo m, computed via
// the extended Euclidean algorithm. It returns ErrNonInvertible if a and m
// share a common factor other than 1.
func ModInverse(a, m *big.Int) (*big.Int, error) {
	var inv, q, g big.Int
	g.GCD(&inv, &q, a, m)
	if g.Cmp(one) != 0 {
		return nil, fmt.Errorf("%w: gcd(%s, %s) = %s", ErrNonInvertible, a, m, &g)
	}
	inv.Mod(&inv, m)
	return &inv, nil
}

// SampleRange draws a cryptographically secure uniform integer in [a, b).
func SampleRange(a, b *big.Int) (*big.Int, error) {
	span := new(big.Int).Sub(b, a)
	if span.Sign() <= 0 {
		return nil, fmt.Errorf("mentalpoker: empty range [%s, %s)", a, b)
	}
	r, err := rand.Int(rand.Reader, span)
	if err != nil {
		return nil, err
	}
	return r.Add(r, a), nil
}

// Shuffle performs an in-place, cryptographically unbiased Fisher-Yates
// shuffle of a length-n sequence, invoking swap(i, j) for each transposition.
// It is the single shuffle primitive shared by the dealers' deck
// permutation (EC and EG) and set permutation (EG commutative sets).
func Shuffle(n int, swap func(i, j int)) error {
	for i := n - 1; i > 0; i-- {
		j, err := randIndex(i + 1)
		if err != nil {
			return err
		}
		if j != i {
			swap(i, j)
		}
	}
	return nil
}

func randIndex(n int) (int, error) {
	r, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, err
	}
	return int(r.Int64()), nil
}

// ProductMod reduces vals by multiplication modulo m, returning 1 for an
// empty input.
func ProductMod(vals []*big.Int, m *big.Int) *big.Int {
	p := new(big.Int).Set(one)
	for _, v := range vals {
		p.Mul(p, v)
		p.Mod(p, m)
	}
	return p
}

var one = big.NewInt(1)
