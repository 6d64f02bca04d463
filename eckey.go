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
	"encoding/hex"
	"fmt"
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// curveOrder is SECP256k1's group order n.
var curveOrder, _ = new(big.Int).SetString(
	"FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEBAAEDCE6AF48A03BBFD25E8CD0364141", 16)

// ECPoint is a point on the curve, used as the unit the shuffle-lock
// scheme masks and unmasks.
type ECPoint struct {
	x secp256k1.JacobianPoint
}

// ECKey wraps a scalar alpha in [2, n) that masks/unmasks curve points by
// scalar multiplication.
type ECKey struct {
	Alpha *big.Int
}

// NewECKey samples a fresh scalar in [2, n).
func NewECKey() (*ECKey, error) {
	alpha, err := SampleRange(big.NewInt(2), curveOrder)
	if err != nil {
		return nil, err
	}
	return &ECKey{Alpha: alpha}, nil
}

// RestoreECKey reconstructs a key from a previously sampled scalar. It
// returns ErrInvalidKey if alpha is not in [2, n).
func RestoreECKey(alpha *big.Int) (*ECKey, error) {
	if alpha.Cmp(big.NewInt(2)) < 0 || alpha.Cmp(curveOrder) >= 0 {
		return nil, ErrInvalidKey
	}
	return &ECKey{Alpha: alpha}, nil
}

// Mask returns alpha*P.
func (k *ECKey) Mask(p ECPoint) ECPoint {
	return scalarMult(k.Alpha, p)
}

// Unmask returns alpha^-1 * P (inverse modulo the curve order), undoing a
// prior Mask by this key: k.Unmask(k.Mask(P)) == P.
func (k *ECKey) Unmask(p ECPoint) (ECPoint, error) {
	inv, err := ModInverse(k.Alpha, curveOrder)
	if err != nil {
		return ECPoint{}, err
	}
	return scalarMult(inv, p), nil
}

func scalarMult(scalar *big.Int, p ECPoint) ECPoint {
	var k secp256k1.ModNScalar
	k.SetByteSlice(padTo32(scalar))
	var result secp256k1.JacobianPoint
	secp256k1.ScalarMultNonConst(&k, &p.x, &result)
	result.ToAffine()
	return ECPoint{x: result}
}

// GeneratorMultiple returns i*G for the curve generator G.
func GeneratorMultiple(i int64) ECPoint {
	var k secp256k1.ModNScalar
	k.SetByteSlice(padTo32(big.NewInt(i)))
	var result secp256k1.JacobianPoint
	secp256k1.ScalarBaseMultNonConst(&k, &result)
	result.ToAffine()
	return ECPoint{x: result}
}

// X returns the point's affine X coordinate, the bijection key into the
// card-name table.
func (p ECPoint) X() *big.Int {
	fv := p.x.X
	fv.Normalize()
	b := fv.Bytes()
	return new(big.Int).SetBytes(b[:])
}

// Hex encodes the point as the uncompressed public-key representation
// (0x04 || X || Y), matching the serialization original_source produces
// via the ecdsa package's VerifyingKey.
func (p ECPoint) Hex() (string, error) {
	x, y := p.x.X, p.x.Y
	x.Normalize()
	y.Normalize()
	pub := secp256k1.NewPublicKey(&x, &y)
	return hex.EncodeToString(pub.SerializeUncompressed()), nil
}

// PointFromHex decodes a point previously serialized with Hex.
func PointFromHex(s string) (ECPoint, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return ECPoint{}, fmt.Errorf("mentalpoker: invalid point hex: %w", err)
	}
	pub, err := secp256k1.ParsePubKey(b)
	if err != nil {
		return ECPoint{}, fmt.Errorf("mentalpoker: invalid point encoding: %w", err)
	}
	var jp secp256k1.JacobianPoint
	jp.X = *pub.X()
	jp.Y = *pub.Y()
	jp.Z.SetInt(1)
	return ECPoint{x: jp}, nil
}

func padTo32(v *big.Int) []byte {
	b := v.Bytes()
	if len(b) >= 32 {
		return b[len(b)-32:]
	}
	out := make([]byte, 32)
	copy(out[32-len(b):], b)
	return out
}
