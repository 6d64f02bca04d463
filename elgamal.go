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

// EGPublicKey is the public half of a basic ElGamal key pair: beta = G^alpha
// mod P under the enclosing KeyParameters.
type EGPublicKey struct {
	KeyParameters
	Beta *big.Int
}

// EGPrivateKey is the secret half of a basic ElGamal key pair: alpha in
// [1, Q).
type EGPrivateKey struct {
	Pub   EGPublicKey
	Alpha *big.Int
}

// NewEGPrivateKey samples a fresh secret exponent under params and derives
// the corresponding public key.
func NewEGPrivateKey(params *KeyParameters) (*EGPrivateKey, error) {
	alpha, err := params.Sample()
	if err != nil {
		return nil, err
	}
	return newEGPrivateKey(alpha, params)
}

// RestoreEGPrivateKey reconstructs a private key from a previously sampled
// exponent. It returns ErrInvalidKey if alpha is not in [1, Q).
func RestoreEGPrivateKey(alpha *big.Int, params *KeyParameters) (*EGPrivateKey, error) {
	if alpha.Sign() < 1 || alpha.Cmp(params.Q) >= 0 {
		return nil, ErrInvalidKey
	}
	return newEGPrivateKey(alpha, params)
}

func newEGPrivateKey(alpha *big.Int, params *KeyParameters) (*EGPrivateKey, error) {
	beta := new(big.Int).Exp(params.G, alpha, params.P)
	return &EGPrivateKey{
		Alpha: alpha,
		Pub: EGPublicKey{
			KeyParameters: *params,
			Beta:          beta,
		},
	}, nil
}

// Public returns the key's public half.
func (sk *EGPrivateKey) Public() *EGPublicKey {
	return &sk.Pub
}

// Encrypt returns a fresh ElGamal ciphertext (c1, c2) = (G^k, beta^k * m)
// for a freshly sampled k. m must be a nonzero element of Z_P*.
func (pk *EGPublicKey) Encrypt(m *big.Int) (c1, c2 *big.Int, err error) {
	if m == nil || m.Sign() <= 0 || m.Cmp(pk.P) >= 0 {
		return nil, nil, ErrInvalidMessage
	}
	k, err := pk.Sample()
	if err != nil {
		return nil, nil, err
	}
	c1 = new(big.Int).Exp(pk.G, k, pk.P)
	c2 = new(big.Int).Exp(pk.Beta, k, pk.P)
	c2.Mul(c2, m)
	c2.Mod(c2, pk.P)
	return c1, c2, nil
}

// Encrypt encrypts under the key's own public half.
func (sk *EGPrivateKey) Encrypt(m *big.Int) (c1, c2 *big.Int, err error) {
	return sk.Pub.Encrypt(m)
}

// Decrypt recovers the plaintext m = c2 * (c1^alpha)^-1 mod P.
func (sk *EGPrivateKey) Decrypt(c1, c2 *big.Int) (*big.Int, error) {
	s := new(big.Int).Exp(c1, sk.Alpha, sk.Pub.P)
	sInv, err := ModInverse(s, sk.Pub.P)
	if err != nil {
		return nil, err
	}
	m := new(big.Int).Mul(sInv, c2)
	m.Mod(m, sk.Pub.P)
	return m, nil
}
