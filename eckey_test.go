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
	"math/big"
	"testing"
)

func mustECKey(t *testing.T) *ECKey {
	t.Helper()
	k, err := NewECKey()
	if err != nil {
		t.Fatalf("NewECKey: %v", err)
	}
	return k
}

func TestECMaskUnmaskRoundTrip(t *testing.T) {
	k := mustECKey(t)
	p := GeneratorMultiple(7)
	masked := k.Mask(p)
	got, err := k.Unmask(masked)
	if err != nil {
		t.Fatalf("Unmask: %v", err)
	}
	if got.X().Cmp(p.X()) != 0 {
		t.Fatalf("Unmask(Mask(P)) != P")
	}
}

func TestECMaskIsCommutative(t *testing.T) {
	a := mustECKey(t)
	b := mustECKey(t)
	p := GeneratorMultiple(3)

	ab := b.Mask(a.Mask(p))
	ba := a.Mask(b.Mask(p))
	if ab.X().Cmp(ba.X()) != 0 {
		t.Fatalf("masking is order-dependent: a-then-b != b-then-a")
	}
}

func TestECDeckIsDistinct(t *testing.T) {
	deck := ECDeck(52)
	seen := make(map[string]bool, len(deck))
	for _, p := range deck {
		seen[p.X().String()] = true
	}
	if len(seen) != len(deck) {
		t.Fatalf("ECDeck(52) produced %d distinct points, want 52", len(seen))
	}
}

func TestRestoreECKeyRejectsOutOfRange(t *testing.T) {
	if _, err := RestoreECKey(big.NewInt(0)); err != ErrInvalidKey {
		t.Fatalf("RestoreECKey(0): got %v, want ErrInvalidKey", err)
	}
	if _, err := RestoreECKey(big.NewInt(1)); err != ErrInvalidKey {
		t.Fatalf("RestoreECKey(1): got %v, want ErrInvalidKey", err)
	}
	if _, err := RestoreECKey(curveOrder); err != ErrInvalidKey {
		t.Fatalf("RestoreECKey(n): got %v, want ErrInvalidKey", err)
	}
}

func TestPointHexRoundTrip(t *testing.T) {
	p := GeneratorMultiple(11)
	s, err := p.Hex()
	if err != nil {
		t.Fatalf("Hex: %v", err)
	}
	got, err := PointFromHex(s)
	if err != nil {
		t.Fatalf("PointFromHex: %v", err)
	}
	if got.X().Cmp(p.X()) != 0 {
		t.Fatalf("PointFromHex(Hex(P)) != P")
	}
}

func TestModInverseComposesWithECUnmask(t *testing.T) {
	// S5: composing two masks then unmasking with the product of the
	// corresponding modular inverses recovers the original point.
	a := mustECKey(t)
	b := mustECKey(t)
	p := GeneratorMultiple(5)

	masked := b.Mask(a.Mask(p))

	aInv, err := ModInverse(a.Alpha, curveOrder)
	if err != nil {
		t.Fatalf("ModInverse: %v", err)
	}
	bInv, err := ModInverse(b.Alpha, curveOrder)
	if err != nil {
		t.Fatalf("ModInverse: %v", err)
	}
	combined := new(big.Int).Mul(aInv, bInv)
	combined.Mod(combined, curveOrder)
	combinedKey, err := RestoreECKey(combined)
	if err != nil {
		t.Fatalf("RestoreECKey: %v", err)
	}

	got := combinedKey.Mask(masked)
	if got.X().Cmp(p.X()) != 0 {
		t.Fatalf("combined-inverse unmask != original point")
	}
}
