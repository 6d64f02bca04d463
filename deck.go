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

import "math/big"

// DefaultResidues are the 52 small quadratic-residue integers for
// DefaultParams, precomputed so the common case avoids a residue search. Order matches original_source's RESIDUES and lines up
// positionally with Cards.
var DefaultResidues = []int64{
	2, 4, 5, 8, 9, 10, 11, 16, 17, 18, 20, 21, 22, 25, 29, 31, 32, 34, 36, 37,
	39, 40, 41, 42, 44, 45, 49, 50, 53, 55, 57, 58, 61, 62, 64, 67, 68, 69,
	71, 72, 73, 74, 78, 79, 80, 81, 82, 83, 84, 85, 88, 90,
}

// ECDeck generates the canonical EC deck: the first n nonzero multiples of
// the curve generator.
func ECDeck(n int) []ECPoint {
	deck := make([]ECPoint, n)
	for i := 0; i < n; i++ {
		deck[i] = GeneratorMultiple(int64(i + 1))
	}
	return deck
}

// EGResidueDeck returns the first n integers m >= 2 lying in the
// quadratic-residue subgroup of Z_P* (m^((P-1)/2) == 1 mod P), using
// params. For DefaultParams it short-circuits to the precomputed
// DefaultResidues table, exactly as original_source branches on
// crypto_params == PUBLIC_PARAMS.
func EGResidueDeck(params *KeyParameters, n int) ([]*big.Int, error) {
	if isDefaultParams(params) && n <= len(DefaultResidues) {
		out := make([]*big.Int, n)
		for i, v := range DefaultResidues[:n] {
			out[i] = big.NewInt(v)
		}
		return out, nil
	}
	return generateResidues(params, n)
}

func isDefaultParams(params *KeyParameters) bool {
	return params.P.Cmp(DefaultParams.P) == 0 &&
		params.G.Cmp(DefaultParams.G) == 0 &&
		params.Q.Cmp(DefaultParams.Q) == 0
}

func generateResidues(params *KeyParameters, n int) ([]*big.Int, error) {
	exp := new(big.Int).Sub(params.P, one)
	exp.Rsh(exp, 1) // (P-1)/2

	residues := make([]*big.Int, 0, n)
	i := big.NewInt(2)
	for len(residues) < n {
		check := new(big.Int).Exp(i, exp, params.P)
		if check.Cmp(one) == 0 {
			residues = append(residues, new(big.Int).Set(i))
		}
		i = new(big.Int).Add(i, one)
	}
	return residues, nil
}
